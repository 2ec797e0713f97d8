package commercekit

import (
	"io"
	"time"

	"github.com/solana-foundation/commerce-kit-sub002/clients"
	"github.com/solana-foundation/commerce-kit-sub002/logger"
	"github.com/solana-foundation/commerce-kit-sub002/metrics"
)

type Option func(*CommerceKit)

func WithLogger(l logger.Logger) Option {
	return func(k *CommerceKit) {
		k.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(k *CommerceKit) {
		k.metrics = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(k *CommerceKit) {
		k.timeout = t
	}
}

// WithEntropy replaces the randomness source used for reference-key
// generation. Intended for tests that need deterministic references.
func WithEntropy(r io.Reader) Option {
	return func(k *CommerceKit) {
		k.entropy = r
	}
}

// WithIDGenerator replaces the payment-ID generator (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(k *CommerceKit) {
		k.newID = fn
	}
}

// WithClient replaces the cluster client. Intended for tests and for
// applications that pool or proxy their own RPC connections.
func WithClient(c clients.Client) Option {
	return func(k *CommerceKit) {
		k.client = c
	}
}
