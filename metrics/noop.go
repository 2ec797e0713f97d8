package metrics

import "time"

// NoopRecorder discards all observations. It is the default Recorder
// when none is configured.
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
