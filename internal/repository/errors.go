// Package repository owns the in-memory state of the booking platform:
// users, wallet balances, show inventory and booking records.  Each
// repository guards its entries with fine-grained locks so operations on
// unrelated keys never contend.  The sentinel errors below form the
// outcome taxonomy shared by every repository; handlers and services
// branch on them with errors.Is.  ErrInsufficientFunds and ErrSoldOut
// are expected business outcomes, not faults: the operation declines and
// leaves state untouched.  ErrInvariantViolation means a defensive check
// failed and indicates a coordination bug upstream; it must be logged
// and surfaced, never absorbed.
package repository

import "errors"

// ErrNotFound is returned when a referenced user, wallet, theatre,
// show or booking does not exist.  Handlers translate it into an
// HTTP 404 (or 400 where the original contract demands it).
var ErrNotFound = errors.New("not found")

// ErrInsufficientFunds is returned by a debit whose amount exceeds the
// current balance.  The balance is left unchanged.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSoldOut is returned by a reservation asking for more seats than
// are currently available.  The seat count is left unchanged.
var ErrSoldOut = errors.New("sold out")

// ErrInvariantViolation is returned when a release would push a show's
// available seats past its original capacity.  State is left unchanged.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrDuplicateEmail is returned when registering a user with an email
// address that is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidAmount is returned when a credit, debit or reservation is
// asked for a negative (or, where positivity is required, zero) amount.
var ErrInvalidAmount = errors.New("invalid amount")
