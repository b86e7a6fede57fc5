package instrumentation

import "runtime"

// RuntimeHeapStats reads heap usage from the Go runtime.
// Implements the instrumentation.HeapStats port.
type RuntimeHeapStats struct{}

// NewRuntimeHeapStats creates a new RuntimeHeapStats reader.
func NewRuntimeHeapStats() *RuntimeHeapStats {
	return &RuntimeHeapStats{}
}

// HeapUsed returns bytes of allocated heap objects.
func (r *RuntimeHeapStats) HeapUsed() (int64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return int64(ms.HeapAlloc), nil
}

// OffHeapUsed returns runtime memory obtained from the OS outside heap spans
// (stacks, gc metadata, allocator structures).
func (r *RuntimeHeapStats) OffHeapUsed() (int64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return int64(ms.Sys - ms.HeapSys), nil
}
