// Package commercekit is an SDK for building Solana payment experiences:
// a headless payment-request builder, a Solana Pay URL codec, and helpers
// for locating and validating settled payments over RPC.
package commercekit

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/solana-foundation/commerce-kit-sub002/clients"
	"github.com/solana-foundation/commerce-kit-sub002/logger"
	"github.com/solana-foundation/commerce-kit-sub002/metrics"
	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
	"github.com/solana-foundation/commerce-kit-sub002/types"
	"github.com/solana-foundation/commerce-kit-sub002/utils"
)

// CommerceKit is the main entry point. It owns a cluster client and the
// ambient concerns (logging, metrics, timeouts); the URL codec itself is
// the stateless solanapay package and can be used without a kit.
type CommerceKit struct {
	client  clients.Client
	config  *types.Config
	logger  logger.Logger
	metrics metrics.Recorder
	timeout time.Duration

	// entropy feeds reference-key generation; newID mints payment IDs.
	// Both are injectable so the builder is deterministic under test.
	entropy io.Reader
	newID   func() string
}

// New creates a CommerceKit for the configured cluster.
func New(config *types.Config, opts ...Option) (*CommerceKit, error) {
	if config == nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: "config is required",
		}
	}

	if err := config.Validate(); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: err.Error(),
		}
	}

	timeout := 30 * time.Second
	if config.DefaultTimeout > 0 {
		timeout = config.DefaultTimeout
	}

	kit := &CommerceKit{
		config:  config,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
		timeout: timeout,
		entropy: rand.Reader,
		newID:   uuid.NewString,
	}

	for _, opt := range opts {
		opt(kit)
	}

	if kit.client == nil {
		client, err := clients.NewSolanaClient(config.Network, config.RPCUrl)
		if err != nil {
			return nil, err
		}
		kit.client = client
	}

	return kit, nil
}

// NewWithDefaults creates a devnet CommerceKit with default settings.
func NewWithDefaults(opts ...Option) (*CommerceKit, error) {
	return New(&types.Config{
		Network:        types.NetworkDevnet,
		DefaultTimeout: 30 * time.Second,
		LogLevel:       "info",
	}, opts...)
}

// NewFromJSON creates a CommerceKit from a JSON-encoded Config.
func NewFromJSON(data []byte, opts ...Option) (*CommerceKit, error) {
	config, err := utils.ParseConfig(data)
	if err != nil {
		return nil, err
	}

	return New(config, opts...)
}

// NewReference generates a fresh reference address from the kit's entropy
// source. The keypair's private half is discarded: references are pure
// correlation tags and never sign anything.
func (k *CommerceKit) NewReference() (solana.PublicKey, error) {
	pub, _, err := ed25519.GenerateKey(k.entropy)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("generate reference: %w", err)
	}

	return solana.PublicKeyFromBytes(pub), nil
}

// FindReference locates the oldest transaction that settled against the
// given reference address.
func (k *CommerceKit) FindReference(ctx context.Context, reference solana.PublicKey) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	start := time.Now()
	sig, err := k.client.FindReference(ctx, reference)
	k.metrics.ObserveLatency("find_reference", time.Since(start), k.labels())

	if err != nil {
		k.logger.Debug("reference not found", map[string]any{
			"reference": reference.String(),
			"error":     err.Error(),
		})
		return solana.Signature{}, err
	}

	k.metrics.IncCounter(metrics.EventReferenceFound, k.labels())
	k.logger.Info("reference found", map[string]any{
		"reference": reference.String(),
		"signature": sig.String(),
	})

	return sig, nil
}

// ValidateTransfer checks a settled transaction against the transfer
// request it should fulfill.
func (k *CommerceKit) ValidateTransfer(ctx context.Context, signature solana.Signature, req *solanapay.TransferRequest) error {
	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	start := time.Now()
	err := k.client.ValidateTransfer(ctx, signature, req)
	k.metrics.ObserveLatency("validate_transfer", time.Since(start), k.labels())

	if err != nil {
		k.metrics.IncCounter(metrics.EventTransferInvalid, k.labels())
		k.logger.Warn("transfer validation failed", map[string]any{
			"signature": signature.String(),
			"error":     err.Error(),
		})
		return err
	}

	k.metrics.IncCounter(metrics.EventTransferValid, k.labels())
	return nil
}

// BuildTransfer constructs an unsigned transaction fulfilling the request.
func (k *CommerceKit) BuildTransfer(ctx context.Context, req *solanapay.TransferRequest, payer solana.PublicKey) (*solana.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	return k.client.BuildTransfer(ctx, req, payer)
}

// SendAndConfirmTransaction broadcasts a signed transaction and waits for
// finalization.
func (k *CommerceKit) SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := k.client.SendAndConfirmTransaction(ctx, tx)
	if err != nil {
		return sig, err
	}

	k.metrics.IncCounter(metrics.EventTransactionSent, k.labels())
	k.logger.Info("transaction finalized", map[string]any{"signature": sig.String()})
	return sig, nil
}

// Network reports the cluster this kit talks to.
func (k *CommerceKit) Network() types.Network {
	return k.client.GetNetwork()
}

// Close releases the underlying client.
func (k *CommerceKit) Close() {
	k.client.Close()
}

func (k *CommerceKit) labels() map[string]string {
	return map[string]string{"network": k.config.Network.String()}
}

// Version information
const (
	Version = "1.0.0"
)

// GetVersion returns version information about the SDK.
func GetVersion() map[string]interface{} {
	return map[string]interface{}{
		"library_version": Version,
		"url_scheme":      solanapay.Protocol,
		"supported_networks": []string{
			string(types.NetworkMainnet),
			string(types.NetworkDevnet),
			string(types.NetworkTestnet),
			string(types.NetworkLocal),
		},
		"request_kinds": []string{"transfer", "transaction"},
	}
}
