package repository

import "sync"

// account is one ledger entry.  Its mutex serializes every read and
// write of the balance, making credit/debit linearizable per account:
// each operation is a read-modify-write of one integer under the lock,
// so no update can be based on a stale balance and a debit can never
// drive the balance negative.
type account struct {
	mu      sync.Mutex
	balance int64
}

// WalletRepo is the account ledger.  The outer RWMutex only guards the
// map of accounts; operations on an account take the read lock for the
// lookup and then the account's own mutex, so concurrent traffic on
// unrelated accounts never contends.  Create and Delete take the write
// lock, which waits out in-flight operations before touching the map.
type WalletRepo struct {
	mu       sync.RWMutex
	accounts map[int64]*account
}

// NewWalletRepo constructs an empty ledger.
func NewWalletRepo() *WalletRepo {
	return &WalletRepo{accounts: make(map[int64]*account)}
}

// CreateIfAbsent ensures an account with zero balance exists for the
// given user.  Existing accounts are left untouched.
func (r *WalletRepo) CreateIfAbsent(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[userID]; !ok {
		r.accounts[userID] = &account{}
	}
}

// Credit adds amount to the account's balance and returns the new
// balance.  A zero amount is a no-op used by wallet creation.  Returns
// ErrInvalidAmount for negative amounts and ErrNotFound if the user has
// no account.
func (r *WalletRepo) Credit(userID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[userID]
	if !ok {
		return 0, ErrNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	acc.balance += amount
	return acc.balance, nil
}

// Debit subtracts amount from the account's balance and returns the
// new balance.  If the balance is smaller than amount the debit is
// declined with ErrInsufficientFunds and the balance is not touched.
// Returns ErrInvalidAmount for non-positive amounts and ErrNotFound if
// the user has no account.
func (r *WalletRepo) Debit(userID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[userID]
	if !ok {
		return 0, ErrNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	if acc.balance < amount {
		return acc.balance, ErrInsufficientFunds
	}
	acc.balance -= amount
	return acc.balance, nil
}

// Balance returns the current balance or ErrNotFound.
func (r *WalletRepo) Balance(userID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[userID]
	if !ok {
		return 0, ErrNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance, nil
}

// Exists reports whether the user has an account.
func (r *WalletRepo) Exists(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accounts[userID]
	return ok
}

// Delete removes the account of the given user.  Returns ErrNotFound
// if there is none; deleting twice is therefore a safe no-op for the
// caller to ignore.
func (r *WalletRepo) Delete(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[userID]; !ok {
		return ErrNotFound
	}
	delete(r.accounts, userID)
	return nil
}

// DeleteAll removes every account.
func (r *WalletRepo) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make(map[int64]*account)
}
