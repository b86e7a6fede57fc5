package valueobject

import "fmt"

// Snapshot представляет мгновенные показания всех метрик за один тик сбора (Value Object)
// Позиция i содержит значение метрики MetricKind(i)
type Snapshot struct {
	values []int64
}

// NewSnapshot создает новый Snapshot с валидацией длины
func NewSnapshot(values []int64) (Snapshot, error) {
	if len(values) != MetricKindCount {
		return Snapshot{}, fmt.Errorf("snapshot must contain %d values, got %d", MetricKindCount, len(values))
	}

	copied := make([]int64, MetricKindCount)
	copy(copied, values)

	return Snapshot{values: copied}, nil
}

// Value возвращает показание для указанного вида метрики
func (s Snapshot) Value(kind MetricKind) int64 {
	return s.values[kind.Index()]
}

// Values возвращает копию всех показаний в порядке позиций
func (s Snapshot) Values() []int64 {
	result := make([]int64, len(s.values))
	copy(result, s.values)
	return result
}

// Len возвращает количество показаний
func (s Snapshot) Len() int {
	return len(s.values)
}
