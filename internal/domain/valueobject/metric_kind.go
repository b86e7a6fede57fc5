package valueobject

import "errors"

// MetricKind представляет вид метрики executor'а (Value Object)
// Порядок объявления фиксирован на все время жизни процесса:
// числовое значение kind'а используется как позиция в Snapshot и PeakState
type MetricKind int

const (
	HeapMemory MetricKind = iota
	OffHeapMemory
	OnHeapExecutionMemory
	OffHeapExecutionMemory
	OnHeapStorageMemory
	OffHeapStorageMemory
	OnHeapUnifiedMemory
	OffHeapUnifiedMemory
	DirectPoolMemory
	MappedPoolMemory
	CPUTime

	// MetricKindCount - количество зарегистрированных видов метрик
	MetricKindCount int = iota
)

// Capability описывает, какая инструментальная возможность нужна для чтения метрики
type Capability string

const (
	CapabilityMemoryManager Capability = "memory-manager"
	CapabilityRuntimeHeap   Capability = "runtime-heap"
	CapabilityBufferPool    Capability = "buffer-pool"
	CapabilityProcessCPU    Capability = "process-cpu"
)

var metricKindNames = [MetricKindCount]string{
	HeapMemory:             "HeapMemory",
	OffHeapMemory:          "OffHeapMemory",
	OnHeapExecutionMemory:  "OnHeapExecutionMemory",
	OffHeapExecutionMemory: "OffHeapExecutionMemory",
	OnHeapStorageMemory:    "OnHeapStorageMemory",
	OffHeapStorageMemory:   "OffHeapStorageMemory",
	OnHeapUnifiedMemory:    "OnHeapUnifiedMemory",
	OffHeapUnifiedMemory:   "OffHeapUnifiedMemory",
	DirectPoolMemory:       "DirectPoolMemory",
	MappedPoolMemory:       "MappedPoolMemory",
	CPUTime:                "CPUTime",
}

var metricKindCapabilities = [MetricKindCount]Capability{
	HeapMemory:             CapabilityRuntimeHeap,
	OffHeapMemory:          CapabilityRuntimeHeap,
	OnHeapExecutionMemory:  CapabilityMemoryManager,
	OffHeapExecutionMemory: CapabilityMemoryManager,
	OnHeapStorageMemory:    CapabilityMemoryManager,
	OffHeapStorageMemory:   CapabilityMemoryManager,
	OnHeapUnifiedMemory:    CapabilityMemoryManager,
	OffHeapUnifiedMemory:   CapabilityMemoryManager,
	DirectPoolMemory:       CapabilityBufferPool,
	MappedPoolMemory:       CapabilityBufferPool,
	CPUTime:                CapabilityProcessCPU,
}

// Validate проверяет валидность вида метрики
func (mk MetricKind) Validate() error {
	if mk < 0 || int(mk) >= MetricKindCount {
		return errors.New("invalid metric kind")
	}
	return nil
}

// Name возвращает стабильное имя метрики
func (mk MetricKind) Name() string {
	if mk.Validate() != nil {
		return "Unknown"
	}
	return metricKindNames[mk]
}

// Index возвращает позицию метрики в Snapshot/PeakState
func (mk MetricKind) Index() int {
	return int(mk)
}

// Capability возвращает тег инструментальной возможности для чтения метрики
func (mk MetricKind) Capability() Capability {
	return metricKindCapabilities[mk]
}

// AllMetricKinds возвращает упорядоченный список всех видов метрик
func AllMetricKinds() []MetricKind {
	kinds := make([]MetricKind, MetricKindCount)
	for i := range kinds {
		kinds[i] = MetricKind(i)
	}
	return kinds
}

// MetricKindNames возвращает имена всех метрик в порядке их позиций
func MetricKindNames() []string {
	names := make([]string, MetricKindCount)
	copy(names, metricKindNames[:])
	return names
}
