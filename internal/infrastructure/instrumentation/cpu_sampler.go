package instrumentation

import (
	"runtime"
	"sync"
	"time"

	"github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
)

// CPUUsageSampler derives utilization percentages from a cumulative CPU time
// reader: elapsed CPU time divided by elapsed wall time across all processors,
// multiplied by Scale. Scale defaults to 100 (ratio to percent); it is kept
// configurable because consumers may expect a different normalization.
type CPUUsageSampler struct {
	reader instrumentation.ProcessCPU
	scale  float64

	mu          sync.Mutex
	prevCPUTime int64
	prevWall    time.Time
	primed      bool

	// injectable for tests
	now    func() time.Time
	numCPU func() int
}

// NewCPUUsageSampler creates a sampler over the given CPU time reader.
func NewCPUUsageSampler(reader instrumentation.ProcessCPU, scale float64) *CPUUsageSampler {
	if scale <= 0 {
		scale = 100.0
	}

	return &CPUUsageSampler{
		reader: reader,
		scale:  scale,
		now:    time.Now,
		numCPU: runtime.NumCPU,
	}
}

// Sample returns CPU utilization over the interval since the previous call.
// The first call primes the baseline and reports 0.
func (s *CPUUsageSampler) Sample() (float64, error) {
	cpuTime, err := s.reader.CPUTime()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wall := s.now()

	if !s.primed {
		s.prevCPUTime = cpuTime
		s.prevWall = wall
		s.primed = true
		return 0, nil
	}

	elapsedCPU := cpuTime - s.prevCPUTime
	elapsedWall := wall.Sub(s.prevWall).Nanoseconds() * int64(s.numCPU())

	s.prevCPUTime = cpuTime
	s.prevWall = wall

	if elapsedWall <= 0 || elapsedCPU < 0 {
		return 0, nil
	}

	return float64(elapsedCPU) / float64(elapsedWall) * s.scale, nil
}
