// Package types holds the shared data model of the commerce kit: cluster
// identifiers, configuration, payment records, and the coded error type
// used by the stateful layers.
package types

import (
	"fmt"
	"math/big"
	"time"
)

// PaymentStatus tracks a payment request through its lifecycle.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFinalized PaymentStatus = "finalized"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// TokenInfo describes an SPL token accepted for payment.
type TokenInfo struct {
	// Mint is the base58 token mint address; empty for native SOL.
	Mint     string `json:"mint,omitempty" validate:"omitempty,min=32,max=44"`
	Symbol   string `json:"symbol" validate:"required"`
	Decimals int    `json:"decimals" validate:"gte=0,lte=18"`
	Name     string `json:"name,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// PaymentRecord is the tracked state of one payment request produced by
// the builder. The Reference address is the correlation tag embedded in
// the payment URL; the eventual on-chain transaction is located by it.
type PaymentRecord struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	Recipient string        `json:"recipient"`
	Amount    *big.Int      `json:"amount,omitempty"`
	SPLToken  string        `json:"splToken,omitempty"`
	Reference string        `json:"reference"`
	Label     string        `json:"label,omitempty"`
	Message   string        `json:"message,omitempty"`
	Memo      string        `json:"memo,omitempty"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`

	// Signature of the transaction that satisfied the request, once found.
	Signature string `json:"signature,omitempty"`
}

// ClientConfig configures the RPC client for one cluster.
type ClientConfig struct {
	Network    Network           `json:"network" validate:"required"`
	RPCUrl     string            `json:"rpcUrl,omitempty" validate:"omitempty,url"`
	WSUrl      string            `json:"wsUrl,omitempty" validate:"omitempty,url"`
	Timeout    time.Duration     `json:"timeout,omitempty"`
	RetryCount int               `json:"retryCount,omitempty" validate:"gte=0"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// Config is the global configuration for the commerce kit.
type Config struct {
	Network        Network       `json:"network" validate:"required"`
	RPCUrl         string        `json:"rpcUrl,omitempty" validate:"omitempty,url"`
	DefaultTimeout time.Duration `json:"defaultTimeout,omitempty"`
	RetryCount     int           `json:"retryCount,omitempty" validate:"gte=0"`
	LogLevel       string        `json:"logLevel,omitempty" validate:"omitempty,oneof=debug info warn error"`
	EnableMetrics  bool          `json:"enableMetrics,omitempty"`
}

// KitError is the coded error surfaced by the stateful layers (client,
// builder). The pure solanapay codec uses sentinel errors instead.
type KitError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e KitError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrInvalidParams      = "INVALID_PARAMS"
	ErrUnsupportedCluster = "UNSUPPORTED_CLUSTER"
	ErrReferenceNotFound  = "REFERENCE_NOT_FOUND"
	ErrValidationFailed   = "VALIDATION_FAILED"
	ErrTransactionFailed  = "TRANSACTION_FAILED"
	ErrNetworkError       = "NETWORK_ERROR"
	ErrConfigError        = "CONFIG_ERROR"
)

// Validate checks that the Config names a known cluster or carries an
// explicit RPC endpoint.
func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("config.network is required")
	}

	if !c.Network.IsKnown() && c.RPCUrl == "" {
		return fmt.Errorf("config.rpcUrl is required for unknown network %q", c.Network)
	}

	return nil
}

// Endpoint resolves the RPC endpoint: the explicit override when set,
// otherwise the cluster default.
func (c *Config) Endpoint() string {
	if c.RPCUrl != "" {
		return c.RPCUrl
	}
	return DefaultRPCEndpoints[c.Network]
}
