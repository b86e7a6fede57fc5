//go:build !linux && !darwin

package instrumentation

import "github.com/dreschagin/executor-monitor/internal/domain/instrumentation"

// RusageCPU is not available on this platform; every read reports
// instrumentation.ErrUnavailable so the snapshot path substitutes 0.
type RusageCPU struct{}

// NewRusageCPU creates a new RusageCPU reader.
func NewRusageCPU() *RusageCPU {
	return &RusageCPU{}
}

// CPUTime always fails on platforms without getrusage.
func (r *RusageCPU) CPUTime() (int64, error) {
	return 0, instrumentation.ErrUnavailable
}
