// Package metrics defines the instrumentation contract for the commerce
// kit. Recording defaults to a no-op; a Prometheus recorder is provided
// for applications that want the SDK's counters in their registry.
package metrics

import "time"

// Recorder receives payment-operation events and latencies. Labels always
// carry at least "network".
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event names used by the commerce kit.
const (
	EventPaymentCreated  = "payment_created"
	EventReferenceFound  = "reference_found"
	EventTransferValid   = "transfer_validated"
	EventTransferInvalid = "transfer_invalid"
	EventTransactionSent = "transaction_sent"
)
