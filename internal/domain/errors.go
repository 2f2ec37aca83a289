package domain

import "errors"

// Ledger operations fail with exactly one of these reasons. They are
// recoverable, caller-visible outcomes, never process-fatal.
var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrBelowMinimumBalance = errors.New("balance would fall below the account minimum")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAccountKind  = errors.New("account kind must be SAVINGS or CURRENT")
	ErrInvalidHolderName   = errors.New("holder name must not be blank")
	ErrAccountNotFound     = errors.New("account not found")
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
	ErrLoanLimitExceeded   = errors.New("loan amount exceeds the account loan limit")
	ErrNoOutstandingLoan   = errors.New("account has no outstanding loan")
)
