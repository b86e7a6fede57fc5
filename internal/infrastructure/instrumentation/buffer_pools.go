package instrumentation

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
)

// ProcessBufferPools reads direct and mapped buffer usage of the current
// process via procfs. Platforms without the required process introspection
// report instrumentation.ErrUnavailable; the snapshot path substitutes 0.
type ProcessBufferPools struct {
	proc *process.Process
}

// NewProcessBufferPools creates a reader bound to the current process.
func NewProcessBufferPools() (*ProcessBufferPools, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open current process: %w", err)
	}

	return &ProcessBufferPools{proc: proc}, nil
}

// DirectPoolUsed estimates memory held by the process outside the Go heap:
// resident set minus what the runtime obtained from the OS, clamped at zero.
func (p *ProcessBufferPools) DirectPoolUsed() (int64, error) {
	info, err := p.proc.MemoryInfo()
	if err != nil {
		return 0, instrumentation.ErrUnavailable
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	direct := int64(info.RSS) - int64(ms.Sys)
	if direct < 0 {
		direct = 0
	}
	return direct, nil
}

// MappedPoolUsed returns the total size of the process memory mappings.
func (p *ProcessBufferPools) MappedPoolUsed() (int64, error) {
	maps, err := p.proc.MemoryMaps(true)
	if err != nil || maps == nil || len(*maps) == 0 {
		// MemoryMaps is procfs-backed and not implemented everywhere
		return 0, instrumentation.ErrUnavailable
	}

	var total int64
	for _, m := range *maps {
		total += int64(m.Size)
	}
	return total, nil
}
