package service

import (
	"sync"

	"github.com/dreschagin/executor-monitor/internal/domain/entity"
)

// CPUUsageTracker хранит скользящие окна загрузки CPU по executor'ам (Domain Service)
type CPUUsageTracker struct {
	mu      sync.RWMutex
	windows map[string]*entity.CPUWindow
}

// NewCPUUsageTracker создает новый CPUUsageTracker
func NewCPUUsageTracker() *CPUUsageTracker {
	return &CPUUsageTracker{
		windows: make(map[string]*entity.CPUWindow),
	}
}

// Init создает окно для executor'а, если его еще нет
// Существующее окно остается нетронутым
func (t *CPUUsageTracker) Init(executorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.windows[executorID]; !ok {
		t.windows[executorID] = entity.NewCPUWindow()
	}
}

// Update добавляет новый замер в окно executor'а, вытесняя самый старый
// Неизвестный executor инициализируется автоматически
func (t *CPUUsageTracker) Update(executorID string, sample float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	window, ok := t.windows[executorID]
	if !ok {
		window = entity.NewCPUWindow()
		t.windows[executorID] = window
	}

	window.Push(sample)
}

// Get возвращает копию окна executor'а, от старого замера к новому
func (t *CPUUsageTracker) Get(executorID string) ([]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	window, ok := t.windows[executorID]
	if !ok {
		return nil, ErrExecutorNotFound
	}

	return window.Values(), nil
}

// Average возвращает среднюю загрузку CPU по окну executor'а
func (t *CPUUsageTracker) Average(executorID string) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	window, ok := t.windows[executorID]
	if !ok {
		return 0, ErrExecutorNotFound
	}

	return window.Average(), nil
}

// Clear удаляет окно executor'а
// Последующие запросы возвращают ErrExecutorNotFound до повторной инициализации
func (t *CPUUsageTracker) Clear(executorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.windows, executorID)
}
