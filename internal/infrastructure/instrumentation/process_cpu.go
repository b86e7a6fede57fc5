package instrumentation

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
)

// GopsutilCPU reads cumulative process CPU time through gopsutil (procfs on
// linux, host APIs elsewhere). Implements the instrumentation.ProcessCPU port.
type GopsutilCPU struct {
	proc *process.Process
}

// NewGopsutilCPU creates a reader bound to the current process.
func NewGopsutilCPU() (*GopsutilCPU, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open current process: %w", err)
	}

	return &GopsutilCPU{proc: proc}, nil
}

// CPUTime returns user+system CPU time of the process in nanoseconds.
func (g *GopsutilCPU) CPUTime() (int64, error) {
	times, err := g.proc.Times()
	if err != nil {
		return 0, instrumentation.ErrUnavailable
	}

	seconds := times.User + times.System
	return int64(seconds * 1e9), nil
}
