package dto

import "time"

// ExecutorReportDTO представляет агрегированное состояние метрик одного executor'а
// Используется reporting-кодом за пределами ядра (логирование, экспорт)
type ExecutorReportDTO struct {
	ExecutorID string           `json:"executor_id"`
	Timestamp  time.Time        `json:"timestamp"`
	Peaks      map[string]int64 `json:"peaks"`
	PeakValues []int64          `json:"peak_values"`
	CPUAverage float64          `json:"cpu_average"`
	Recorded   bool             `json:"recorded"`
}

// NewExecutorReportDTO собирает отчет из пиков и средней загрузки CPU
// names и peakValues выровнены по позициям каталога метрик
func NewExecutorReportDTO(executorID string, names []string, peakValues []int64, cpuAverage float64) *ExecutorReportDTO {
	peaks := make(map[string]int64, len(names))
	for i, name := range names {
		peaks[name] = peakValues[i]
	}

	return &ExecutorReportDTO{
		ExecutorID: executorID,
		Timestamp:  time.Now(),
		Peaks:      peaks,
		PeakValues: peakValues,
		CPUAverage: cpuAverage,
		Recorded:   len(peakValues) > 0 && peakValues[0] >= 0,
	}
}
