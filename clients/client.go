// Package clients wraps the Solana RPC surface the commerce kit needs:
// locating payments by reference, validating settled transfers against the
// original request, building transfer transactions, and broadcasting them.
package clients

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
	kittypes "github.com/solana-foundation/commerce-kit-sub002/types"
)

// Client is the chain-facing contract consumed by the root facade.
type Client interface {
	// FindReference returns the oldest transaction signature that includes
	// the reference address in its account keys.
	FindReference(ctx context.Context, reference solana.PublicKey) (solana.Signature, error)

	// ValidateTransfer checks that the transaction identified by signature
	// satisfies the transfer request: correct recipient, at least the
	// requested amount, references present.
	ValidateTransfer(ctx context.Context, signature solana.Signature, req *solanapay.TransferRequest) error

	// BuildTransfer constructs an unsigned transaction fulfilling the
	// transfer request, with the payer as fee payer.
	BuildTransfer(ctx context.Context, req *solanapay.TransferRequest, payer solana.PublicKey) (*solana.Transaction, error)

	// SendAndConfirmTransaction broadcasts a signed transaction and blocks
	// until it is finalized or ctx is done.
	SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// TokenDecimals reports the decimal precision of an SPL mint.
	TokenDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)

	GetNetwork() kittypes.Network
	Close()
}
