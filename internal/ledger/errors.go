package ledger

import "errors"

// Domain errors returned by Store operations. All are recoverable: a failed
// operation never corrupts the in-memory state.
var (
	// ErrAccountExists means the case-folded username is already taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrEmptyUsername means the username was empty after trimming.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrUnknownAccount means no account with that username exists.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidAmount means the amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance means a debit would drive the balance negative.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidKind means a debit was requested with a non-debit kind.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrIndexOutOfRange means the transaction index does not exist.
	ErrIndexOutOfRange = errors.New("transaction index out of range")

	// ErrPersistence means the ledger file could not be written. The
	// in-memory state is ahead of the durable copy until the next
	// successful save.
	ErrPersistence = errors.New("ledger write failed")
)
