package usecase

import (
	"fmt"

	"github.com/dreschagin/executor-monitor/internal/application/dto"
	"github.com/dreschagin/executor-monitor/internal/domain/service"
	"github.com/dreschagin/executor-monitor/pkg/logger"
)

// GetExecutorReportUseCase возвращает пики и среднюю загрузку CPU executor'а
type GetExecutorReportUseCase struct {
	sources     *service.MetricSourceRegistry
	peakTracker *service.PeakTracker
	cpuTracker  *service.CPUUsageTracker
	logger      *logger.Logger
}

// NewGetExecutorReportUseCase создает новый use case
func NewGetExecutorReportUseCase(
	sources *service.MetricSourceRegistry,
	peakTracker *service.PeakTracker,
	cpuTracker *service.CPUUsageTracker,
	logger *logger.Logger,
) *GetExecutorReportUseCase {
	return &GetExecutorReportUseCase{
		sources:     sources,
		peakTracker: peakTracker,
		cpuTracker:  cpuTracker,
		logger:      logger,
	}
}

// Execute собирает отчет по executor'у
// Неизвестный executor - это service.ErrExecutorNotFound, а не нулевой отчет
func (uc *GetExecutorReportUseCase) Execute(executorID string) (*dto.ExecutorReportDTO, error) {
	peaks, err := uc.peakTracker.Peaks(executorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get peaks for executor %s: %w", executorID, err)
	}

	average, err := uc.cpuTracker.Average(executorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU average for executor %s: %w", executorID, err)
	}

	uc.logger.Debug("Executor report built", "executor_id", executorID, "cpu_average", average)

	return dto.NewExecutorReportDTO(executorID, uc.sources.Names(), peaks, average), nil
}
