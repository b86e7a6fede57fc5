package service

import (
	"github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
)

// readFunc читает одно мгновенное значение из набора инструментальных возможностей
type readFunc func(bundle instrumentation.Bundle) (int64, error)

// metricReads - упорядоченная таблица чтения: позиция i соответствует MetricKind(i)
// Таблица неизменяема после инициализации и безопасно разделяется всеми executor'ами
var metricReads = [valueobject.MetricKindCount]readFunc{
	valueobject.HeapMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Heap == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Heap.HeapUsed()
	},
	valueobject.OffHeapMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Heap == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Heap.OffHeapUsed()
	},
	valueobject.OnHeapExecutionMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OnHeapExecutionMemoryUsed(), nil
	},
	valueobject.OffHeapExecutionMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OffHeapExecutionMemoryUsed(), nil
	},
	valueobject.OnHeapStorageMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OnHeapStorageMemoryUsed(), nil
	},
	valueobject.OffHeapStorageMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OffHeapStorageMemoryUsed(), nil
	},
	valueobject.OnHeapUnifiedMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OnHeapExecutionMemoryUsed() + b.Memory.OnHeapStorageMemoryUsed(), nil
	},
	valueobject.OffHeapUnifiedMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Memory == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Memory.OffHeapExecutionMemoryUsed() + b.Memory.OffHeapStorageMemoryUsed(), nil
	},
	valueobject.DirectPoolMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Pools == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Pools.DirectPoolUsed()
	},
	valueobject.MappedPoolMemory: func(b instrumentation.Bundle) (int64, error) {
		if b.Pools == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.Pools.MappedPoolUsed()
	},
	valueobject.CPUTime: func(b instrumentation.Bundle) (int64, error) {
		if b.CPU == nil {
			return 0, instrumentation.ErrUnavailable
		}
		return b.CPU.CPUTime()
	},
}

// MetricSourceRegistry предоставляет чтение метрик по фиксированному каталогу (Domain Service)
type MetricSourceRegistry struct{}

// NewMetricSourceRegistry создает новый MetricSourceRegistry
func NewMetricSourceRegistry() *MetricSourceRegistry {
	return &MetricSourceRegistry{}
}

// Kinds возвращает упорядоченный список видов метрик
func (r *MetricSourceRegistry) Kinds() []valueobject.MetricKind {
	return valueobject.AllMetricKinds()
}

// Names возвращает имена метрик в порядке позиций
func (r *MetricSourceRegistry) Names() []string {
	return valueobject.MetricKindNames()
}

// Read читает текущее значение метрики из набора возможностей
// Отказ одной возможности не мешает чтению остальных метрик:
// вызывающая сторона подставляет 0 при instrumentation.ErrUnavailable
func (r *MetricSourceRegistry) Read(kind valueobject.MetricKind, bundle instrumentation.Bundle) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}
	return metricReads[kind.Index()](bundle)
}
