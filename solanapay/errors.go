package solanapay

import "errors"

// Parse and encode failures wrap one of these sentinels, so callers can
// classify failures with errors.Is and give field-precise feedback.
var (
	// ErrInvalidProtocol is returned when a URL does not start with the
	// solana: scheme.
	ErrInvalidProtocol = errors.New("solanapay: invalid protocol")

	// ErrMissingPath is returned when the recipient/path segment is empty.
	ErrMissingPath = errors.New("solanapay: missing path")

	// ErrURLTooLong is returned when input exceeds MaxURLLength.
	ErrURLTooLong = errors.New("solanapay: url too long")

	// ErrInvalidRecipient is returned when the recipient is not a
	// well-formed address.
	ErrInvalidRecipient = errors.New("solanapay: invalid recipient")

	// ErrInvalidToken is returned when the spl-token parameter is not a
	// well-formed address.
	ErrInvalidToken = errors.New("solanapay: invalid spl-token")

	// ErrInvalidReference is returned when a reference parameter is not a
	// well-formed address.
	ErrInvalidReference = errors.New("solanapay: invalid reference")

	// ErrInvalidAmount is returned when an amount string is not a plain
	// unsigned decimal number.
	ErrInvalidAmount = errors.New("solanapay: invalid amount")

	// ErrAmountPrecision is returned when an amount carries more
	// fractional digits than the decimals bound allows. Excess precision
	// is never rounded or truncated.
	ErrAmountPrecision = errors.New("solanapay: amount precision exceeds decimals")

	// ErrAmountEmpty is returned when an amount string is empty or
	// whitespace only.
	ErrAmountEmpty = errors.New("solanapay: amount is empty")

	// ErrInvalidLink is returned when a transaction-request link is not an
	// absolute https URL.
	ErrInvalidLink = errors.New("solanapay: invalid link")

	// ErrInvalidAddress is returned by ToAddress for strings that are not
	// well-formed base58 public keys.
	ErrInvalidAddress = errors.New("solanapay: invalid address")
)
