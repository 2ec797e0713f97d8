package solanapay

import (
	"math/big"
	"net/url"

	"github.com/gagliardetto/solana-go"
)

// Request is the sum of the two Solana Pay request kinds. EncodeURL
// accepts either; ParseURL returns whichever kind the URL carries.
// Dispatch is an explicit type switch on *TransferRequest and
// *TransactionRequest.
type Request interface {
	isRequest()
}

// TransferRequest describes a direct transfer of SOL or an SPL token.
type TransferRequest struct {
	// Recipient receives the transfer.
	Recipient solana.PublicKey

	// Amount is the requested amount in atomic units (lamports for native
	// SOL, base units for SPL tokens). Nil means the amount is left for
	// the payer to decide. Amounts never lose precision: the wire value is
	// a decimal string with at most SOLDecimals fractional digits.
	Amount *big.Int

	// SPLToken identifies a token mint; nil means native SOL.
	SPLToken *solana.PublicKey

	// References are opaque correlation addresses attached to the eventual
	// transaction. Encode order is preserved.
	References []solana.PublicKey

	// Label, Message and Memo are optional display strings. Empty strings
	// are treated as absent.
	Label   string
	Message string
	Memo    string
}

func (*TransferRequest) isRequest() {}

// TransactionRequest delegates transaction construction to an https
// endpoint identified by Link.
type TransactionRequest struct {
	// Link is the absolute https URL of the transaction-request endpoint.
	Link *url.URL

	// Label and Message are optional display strings.
	Label   string
	Message string
}

func (*TransactionRequest) isRequest() {}
