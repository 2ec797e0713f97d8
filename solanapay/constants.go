// Package solanapay implements the Solana Pay URL scheme: encoding and
// parsing of transfer-request and transaction-request URLs, plus the
// lossless amount conversions the wire format depends on.
//
// The codec is pure and stateless. It performs no I/O and holds no
// mutable state, so every function is safe for concurrent use.
package solanapay

// Protocol is the URI scheme prefix for Solana Pay requests.
// Comparison is case-sensitive per the Solana Pay specification.
const Protocol = "solana:"

// HTTPSProtocol is the scheme required of embedded transaction-request links.
const HTTPSProtocol = "https:"

// SOLDecimals is the decimal precision of native SOL: 1 SOL = 10^9 lamports.
// Transfer-request amounts are always expressed on the wire with this
// precision, even when an spl-token parameter is present.
const SOLDecimals = 9

// MaxURLLength bounds the input accepted by ParseURL. Longer strings are
// rejected before any parsing work is done.
const MaxURLLength = 2048
