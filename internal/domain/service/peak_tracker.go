package service

import (
	"errors"
	"sync"

	"github.com/dreschagin/executor-monitor/internal/domain/entity"
	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
)

// ErrExecutorNotFound возвращается при запросе к executor'у без отслеживаемого
// состояния, чтобы вызывающая сторона могла отличить "данных еще нет" от
// "нулевое потребление"
var ErrExecutorNotFound = errors.New("executor not found")

// PeakTracker хранит пиковые значения метрик по executor'ам (Domain Service)
// Все операции над состоянием одного executor'а взаимно исключены
type PeakTracker struct {
	mu    sync.RWMutex
	peaks map[string]*entity.PeakState
}

// NewPeakTracker создает новый PeakTracker
func NewPeakTracker() *PeakTracker {
	return &PeakTracker{
		peaks: make(map[string]*entity.PeakState),
	}
}

// Register создает состояние для executor'а, если его еще нет
func (t *PeakTracker) Register(executorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.peaks[executorID]; !ok {
		t.peaks[executorID] = entity.NewPeakState()
	}
}

// CompareAndUpdate применяет снапшот к состоянию executor'а
// Неизвестный executor регистрируется автоматически: драйвер может прислать
// первый снапшот раньше явной регистрации
// Возвращает true, если хотя бы один пик обновился
func (t *PeakTracker) CompareAndUpdate(executorID string, snapshot valueobject.Snapshot) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.peaks[executorID]
	if !ok {
		state = entity.NewPeakState()
		t.peaks[executorID] = state
	}

	return state.CompareAndUpdate(snapshot)
}

// Peaks возвращает копию пиковых значений executor'а в порядке позиций каталога
func (t *PeakTracker) Peaks(executorID string) ([]int64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, ok := t.peaks[executorID]
	if !ok {
		return nil, ErrExecutorNotFound
	}

	return state.Values(), nil
}

// Reset возвращает состояние executor'а к начальному виду (epoch rollover)
func (t *PeakTracker) Reset(executorID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.peaks[executorID]
	if !ok {
		return ErrExecutorNotFound
	}

	state.Reset()
	return nil
}

// Deregister удаляет состояние executor'а
func (t *PeakTracker) Deregister(executorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.peaks, executorID)
}

// Tracked возвращает количество отслеживаемых executor'ов
func (t *PeakTracker) Tracked() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.peaks)
}
