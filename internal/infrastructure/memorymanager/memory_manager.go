package memorymanager

import (
	"fmt"
	"sync/atomic"
)

// Mode selects which backing store a pool accounts against.
type Mode int

const (
	OnHeap Mode = iota
	OffHeap
)

// Manager keeps execution and storage pool accounting for the worker process.
// Counters are plain byte counts updated atomically; reads never block, so the
// metric snapshot path can poll them on every tick.
type Manager struct {
	onHeapCapacity  int64
	offHeapCapacity int64

	onHeapExecution  atomic.Int64
	offHeapExecution atomic.Int64
	onHeapStorage    atomic.Int64
	offHeapStorage   atomic.Int64
}

// New creates a Manager with per-mode capacity bounds in bytes.
func New(onHeapCapacity, offHeapCapacity int64) *Manager {
	return &Manager{
		onHeapCapacity:  onHeapCapacity,
		offHeapCapacity: offHeapCapacity,
	}
}

// AcquireExecution reserves execution memory, failing when the mode's capacity
// would be exceeded.
func (m *Manager) AcquireExecution(mode Mode, bytes int64) error {
	return m.acquire(m.executionCounter(mode), m.storageCounter(mode), m.capacity(mode), bytes)
}

// ReleaseExecution returns execution memory to the pool.
func (m *Manager) ReleaseExecution(mode Mode, bytes int64) {
	release(m.executionCounter(mode), bytes)
}

// AcquireStorage reserves storage memory, failing when the mode's capacity
// would be exceeded.
func (m *Manager) AcquireStorage(mode Mode, bytes int64) error {
	return m.acquire(m.storageCounter(mode), m.executionCounter(mode), m.capacity(mode), bytes)
}

// ReleaseStorage returns storage memory to the pool.
func (m *Manager) ReleaseStorage(mode Mode, bytes int64) {
	release(m.storageCounter(mode), bytes)
}

// OnHeapExecutionMemoryUsed implements instrumentation.MemoryManager.
func (m *Manager) OnHeapExecutionMemoryUsed() int64 {
	return m.onHeapExecution.Load()
}

// OffHeapExecutionMemoryUsed implements instrumentation.MemoryManager.
func (m *Manager) OffHeapExecutionMemoryUsed() int64 {
	return m.offHeapExecution.Load()
}

// OnHeapStorageMemoryUsed implements instrumentation.MemoryManager.
func (m *Manager) OnHeapStorageMemoryUsed() int64 {
	return m.onHeapStorage.Load()
}

// OffHeapStorageMemoryUsed implements instrumentation.MemoryManager.
func (m *Manager) OffHeapStorageMemoryUsed() int64 {
	return m.offHeapStorage.Load()
}

func (m *Manager) acquire(target, sibling *atomic.Int64, capacity, bytes int64) error {
	if bytes < 0 {
		return fmt.Errorf("cannot acquire negative amount: %d", bytes)
	}

	for {
		current := target.Load()
		if current+sibling.Load()+bytes > capacity {
			return fmt.Errorf("memory pool exhausted: requested %d, used %d of %d",
				bytes, current+sibling.Load(), capacity)
		}
		if target.CompareAndSwap(current, current+bytes) {
			return nil
		}
	}
}

func release(target *atomic.Int64, bytes int64) {
	if bytes < 0 {
		return
	}

	for {
		current := target.Load()
		next := current - bytes
		if next < 0 {
			next = 0
		}
		if target.CompareAndSwap(current, next) {
			return
		}
	}
}

func (m *Manager) executionCounter(mode Mode) *atomic.Int64 {
	if mode == OffHeap {
		return &m.offHeapExecution
	}
	return &m.onHeapExecution
}

func (m *Manager) storageCounter(mode Mode) *atomic.Int64 {
	if mode == OffHeap {
		return &m.offHeapStorage
	}
	return &m.onHeapStorage
}

func (m *Manager) capacity(mode Mode) int64 {
	if mode == OffHeap {
		return m.offHeapCapacity
	}
	return m.onHeapCapacity
}
