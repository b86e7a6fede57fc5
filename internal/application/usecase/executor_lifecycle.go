package usecase

import (
	"fmt"

	"github.com/dreschagin/executor-monitor/internal/domain/service"
	"github.com/dreschagin/executor-monitor/pkg/logger"
)

// RegisterExecutorUseCase создает отслеживаемое состояние для нового executor'а
type RegisterExecutorUseCase struct {
	peakTracker *service.PeakTracker
	cpuTracker  *service.CPUUsageTracker
	logger      *logger.Logger
}

// NewRegisterExecutorUseCase создает новый use case
func NewRegisterExecutorUseCase(
	peakTracker *service.PeakTracker,
	cpuTracker *service.CPUUsageTracker,
	logger *logger.Logger,
) *RegisterExecutorUseCase {
	return &RegisterExecutorUseCase{
		peakTracker: peakTracker,
		cpuTracker:  cpuTracker,
		logger:      logger,
	}
}

// Execute регистрирует executor'а в обоих трекерах
// Повторная регистрация не затирает накопленное состояние
func (uc *RegisterExecutorUseCase) Execute(executorID string) {
	uc.peakTracker.Register(executorID)
	uc.cpuTracker.Init(executorID)
	uc.logger.Info("Executor registered", "executor_id", executorID)
}

// ResetExecutorPeaksUseCase сбрасывает пики executor'а (epoch rollover)
type ResetExecutorPeaksUseCase struct {
	peakTracker *service.PeakTracker
	logger      *logger.Logger
}

// NewResetExecutorPeaksUseCase создает новый use case
func NewResetExecutorPeaksUseCase(
	peakTracker *service.PeakTracker,
	logger *logger.Logger,
) *ResetExecutorPeaksUseCase {
	return &ResetExecutorPeaksUseCase{
		peakTracker: peakTracker,
		logger:      logger,
	}
}

// Execute возвращает пики executor'а к начальному состоянию
func (uc *ResetExecutorPeaksUseCase) Execute(executorID string) error {
	if err := uc.peakTracker.Reset(executorID); err != nil {
		return fmt.Errorf("failed to reset peaks for executor %s: %w", executorID, err)
	}

	uc.logger.Info("Executor peaks reset", "executor_id", executorID)
	return nil
}

// DeregisterExecutorUseCase удаляет все состояние executor'а
type DeregisterExecutorUseCase struct {
	peakTracker *service.PeakTracker
	cpuTracker  *service.CPUUsageTracker
	logger      *logger.Logger
}

// NewDeregisterExecutorUseCase создает новый use case
func NewDeregisterExecutorUseCase(
	peakTracker *service.PeakTracker,
	cpuTracker *service.CPUUsageTracker,
	logger *logger.Logger,
) *DeregisterExecutorUseCase {
	return &DeregisterExecutorUseCase{
		peakTracker: peakTracker,
		cpuTracker:  cpuTracker,
		logger:      logger,
	}
}

// Execute удаляет пики и окно загрузки CPU executor'а
func (uc *DeregisterExecutorUseCase) Execute(executorID string) {
	uc.peakTracker.Deregister(executorID)
	uc.cpuTracker.Clear(executorID)
	uc.logger.Info("Executor deregistered", "executor_id", executorID)
}
