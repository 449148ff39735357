package bank

import "errors"

// Input errors. These indicate the caller passed something invalid and
// should be treated as bugs in the calling code.
var (
	// ErrNonPositiveAmount is returned when a deposit or withdrawal
	// amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Business denials. These are ordinary recoverable outcomes; callers are
// expected to check for them with errors.Is and carry on.
var (
	// ErrOverdraftExceeded is returned when a checking withdrawal would
	// push the balance below the overdraft limit.
	ErrOverdraftExceeded = errors.New("withdrawal exceeds overdraft limit")

	// ErrInsufficientFunds is returned when a savings withdrawal exceeds
	// the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownAccountType is returned by OpenAccount for a type tag
	// that no constructor is registered for.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrAccountNotFound is returned when no account exists under the
	// given number.
	ErrAccountNotFound = errors.New("account not found")
)
