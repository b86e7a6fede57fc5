package entity

import (
	"fmt"

	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
)

// neverRecorded - сентинел в позиции 0, означающий "для этого executor'а
// еще не было ни одного снапшота"
const neverRecorded int64 = -1

// PeakState хранит максимальные значения каждой метрики одного executor'а (Entity)
// Позиции выровнены с каталогом MetricKind
type PeakState struct {
	peaks []int64
}

// NewPeakState создает состояние в начальном виде: позиция 0 = -1, остальные 0
func NewPeakState() *PeakState {
	peaks := make([]int64, valueobject.MetricKindCount)
	peaks[0] = neverRecorded

	return &PeakState{peaks: peaks}
}

// CompareAndUpdate сравнивает снапшот с текущими пиками и обновляет их
// Возвращает true, если хотя бы одна позиция изменилась
// Позиции обрабатываются независимо друг от друга
func (ps *PeakState) CompareAndUpdate(snapshot valueobject.Snapshot) bool {
	if snapshot.Len() != len(ps.peaks) {
		// Нарушение контракта вызывающей стороны: молчаливое усечение
		// исказило бы соответствие позиция -> метрика
		panic(fmt.Sprintf("snapshot length %d does not match peak state length %d",
			snapshot.Len(), len(ps.peaks)))
	}

	updated := false
	for _, kind := range valueobject.AllMetricKinds() {
		if value := snapshot.Value(kind); value > ps.peaks[kind.Index()] {
			ps.peaks[kind.Index()] = value
			updated = true
		}
	}

	return updated
}

// Reset возвращает состояние к начальному виду (как при создании)
func (ps *PeakState) Reset() {
	for i := range ps.peaks {
		ps.peaks[i] = 0
	}
	ps.peaks[0] = neverRecorded
}

// Recorded сообщает, был ли обработан хотя бы один снапшот
func (ps *PeakState) Recorded() bool {
	return ps.peaks[0] != neverRecorded
}

// Peak возвращает пиковое значение для указанного вида метрики
func (ps *PeakState) Peak(kind valueobject.MetricKind) int64 {
	return ps.peaks[kind.Index()]
}

// Values возвращает копию всех пиков в порядке позиций
func (ps *PeakState) Values() []int64 {
	result := make([]int64, len(ps.peaks))
	copy(result, ps.peaks)
	return result
}
