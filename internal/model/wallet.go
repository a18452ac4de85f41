package model

// Wallet is the externally visible view of one user's balance.  The
// balance is held in currency minor units and is never negative; all
// mutations go through the wallet repository's credit/debit primitives.
type Wallet struct {
	UserID  int64 `json:"user_id"`
	Balance int64 `json:"balance"`
}
