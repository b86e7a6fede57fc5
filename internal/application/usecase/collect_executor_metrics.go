package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
	"github.com/dreschagin/executor-monitor/internal/domain/service"
	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
	"github.com/dreschagin/executor-monitor/pkg/logger"
)

// CollectExecutorMetricsUseCase координирует один тик сбора: чтение всех метрик,
// построение снапшота и обновление peak/CPU трекеров
type CollectExecutorMetricsUseCase struct {
	sources     *service.MetricSourceRegistry
	bundle      instrumentation.Bundle
	sampler     instrumentation.UsageSampler
	peakTracker *service.PeakTracker
	cpuTracker  *service.CPUUsageTracker
	logger      *logger.Logger

	// Ограничивает частоту warn-логов о недоступных возможностях,
	// чтобы не засорять лог на каждом тике
	warnLimiter *rate.Limiter
}

// NewCollectExecutorMetricsUseCase создает новый use case
func NewCollectExecutorMetricsUseCase(
	sources *service.MetricSourceRegistry,
	bundle instrumentation.Bundle,
	sampler instrumentation.UsageSampler,
	peakTracker *service.PeakTracker,
	cpuTracker *service.CPUUsageTracker,
	logger *logger.Logger,
) *CollectExecutorMetricsUseCase {
	return &CollectExecutorMetricsUseCase{
		sources:     sources,
		bundle:      bundle,
		sampler:     sampler,
		peakTracker: peakTracker,
		cpuTracker:  cpuTracker,
		logger:      logger,
		warnLimiter: rate.NewLimiter(rate.Every(time.Minute), 1),
	}
}

// Execute выполняет один тик сбора метрик для указанного executor'а
func (uc *CollectExecutorMetricsUseCase) Execute(ctx context.Context, executorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// 1. Читаем все метрики каталога одним тиком
	values := make([]int64, valueobject.MetricKindCount)
	for _, kind := range uc.sources.Kinds() {
		value, err := uc.sources.Read(kind, uc.bundle)
		if err != nil {
			if !errors.Is(err, instrumentation.ErrUnavailable) {
				return fmt.Errorf("failed to read metric %s: %w", kind.Name(), err)
			}
			// Недоступная возможность не срывает тик: подставляем 0
			if uc.warnLimiter.Allow() {
				uc.logger.Warn("Metric source unavailable, substituting 0",
					"metric", kind.Name(), "capability", string(kind.Capability()))
			}
			value = 0
		}
		values[kind.Index()] = value
	}

	snapshot, err := valueobject.NewSnapshot(values)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	// 2. Обновляем пики
	if updated := uc.peakTracker.CompareAndUpdate(executorID, snapshot); updated {
		uc.logger.Debug("Peak metrics updated", "executor_id", executorID)
	}

	// 3. Обновляем окно загрузки CPU
	// Неудачный замер пропускает только обновление окна, снапшот уже применен
	usage, err := uc.sampler.Sample()
	if err != nil {
		uc.logger.Warn("CPU usage sample failed, keeping previous window",
			"executor_id", executorID, "error", err.Error())
		return nil
	}

	uc.cpuTracker.Update(executorID, usage)
	uc.logger.Debug("CPU usage recorded", "executor_id", executorID, "usage", usage)

	return nil
}
