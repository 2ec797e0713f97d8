package clients

import "errors"

var (
	// ErrNotFound is returned by FindReference when no transaction
	// mentions the reference address yet.
	ErrNotFound = errors.New("clients: no transaction found for reference")

	// ErrTransactionFailed is returned when the located transaction
	// recorded an on-chain error.
	ErrTransactionFailed = errors.New("clients: transaction failed on chain")

	// ErrMissingMeta is returned when the RPC response lacks the
	// transaction meta needed to validate balances.
	ErrMissingMeta = errors.New("clients: transaction meta unavailable")

	// ErrRecipientNotFound is returned when the expected recipient does
	// not appear in the transaction's account keys.
	ErrRecipientNotFound = errors.New("clients: recipient not found in transaction")

	// ErrAmountMismatch is returned when the recipient's balance change is
	// below the requested amount.
	ErrAmountMismatch = errors.New("clients: transferred amount below requested amount")

	// ErrReferenceNotFound is returned when a request reference is absent
	// from the transaction's account keys.
	ErrReferenceNotFound = errors.New("clients: reference not found in transaction")

	// ErrNotConfirmed is returned when a broadcast transaction does not
	// finalize before the context deadline.
	ErrNotConfirmed = errors.New("clients: transaction not confirmed")
)
