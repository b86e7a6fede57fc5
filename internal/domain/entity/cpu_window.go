package entity

// CPUWindowSize - фиксированная емкость скользящего окна CPU-замеров
const CPUWindowSize = 5

// warmUpUsage - значение, которым заполняется окно до первых реальных замеров
// Новый executor считается полностью загруженным, пока не появятся данные:
// это не дает ложно сигнализировать о простое во время прогрева
const warmUpUsage = 100.0

// CPUWindow хранит последние CPUWindowSize замеров загрузки CPU одного
// executor'а в процентах, от старого к новому (Entity)
type CPUWindow struct {
	samples []float64
}

// NewCPUWindow создает окно, заполненное warm-up значением
func NewCPUWindow() *CPUWindow {
	samples := make([]float64, CPUWindowSize)
	for i := range samples {
		samples[i] = warmUpUsage
	}

	return &CPUWindow{samples: samples}
}

// Push вытесняет самый старый замер и добавляет новый в конец
func (w *CPUWindow) Push(sample float64) {
	for i := 0; i < CPUWindowSize-1; i++ {
		w.samples[i] = w.samples[i+1]
	}
	w.samples[CPUWindowSize-1] = sample
}

// Average возвращает среднее арифметическое по всем слотам окна
func (w *CPUWindow) Average() float64 {
	var sum float64
	for _, s := range w.samples {
		sum += s
	}
	return sum / CPUWindowSize
}

// Values возвращает копию замеров, от старого к новому
func (w *CPUWindow) Values() []float64 {
	result := make([]float64, len(w.samples))
	copy(result, w.samples)
	return result
}
