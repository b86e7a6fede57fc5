package usecase

import (
	"errors"
	"testing"

	"github.com/dreschagin/executor-monitor/internal/domain/service"
	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
	"github.com/dreschagin/executor-monitor/pkg/logger"
)

func TestRegisterExecutorUseCase_InitializesBothTrackers(t *testing.T) {
	peakTracker := service.NewPeakTracker()
	cpuTracker := service.NewCPUUsageTracker()
	uc := NewRegisterExecutorUseCase(peakTracker, cpuTracker, logger.New("error"))

	uc.Execute("exec-1")

	peaks, err := peakTracker.Peaks("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peaks[0] != -1 {
		t.Errorf("expected fresh sentinel -1, got %d", peaks[0])
	}

	avg, err := cpuTracker.Average("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 100.0 {
		t.Errorf("expected warm-up average 100.0, got %v", avg)
	}
}

func TestResetExecutorPeaksUseCase_RestoresInitialState(t *testing.T) {
	peakTracker := service.NewPeakTracker()
	uc := NewResetExecutorPeaksUseCase(peakTracker, logger.New("error"))

	values := make([]int64, valueobject.MetricKindCount)
	for i := range values {
		values[i] = 77
	}
	snapshot, err := valueobject.NewSnapshot(values)
	if err != nil {
		t.Fatalf("failed to build snapshot: %v", err)
	}
	peakTracker.CompareAndUpdate("exec-1", snapshot)

	if err := uc.Execute("exec-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peaks, err := peakTracker.Peaks("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peaks[0] != -1 {
		t.Errorf("expected sentinel -1 after reset, got %d", peaks[0])
	}

	if err := uc.Execute("ghost"); !errors.Is(err, service.ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound for unknown executor, got %v", err)
	}
}

func TestDeregisterExecutorUseCase_DropsAllState(t *testing.T) {
	peakTracker := service.NewPeakTracker()
	cpuTracker := service.NewCPUUsageTracker()

	NewRegisterExecutorUseCase(peakTracker, cpuTracker, logger.New("error")).Execute("exec-1")
	NewDeregisterExecutorUseCase(peakTracker, cpuTracker, logger.New("error")).Execute("exec-1")

	if _, err := peakTracker.Peaks("exec-1"); !errors.Is(err, service.ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound for peaks, got %v", err)
	}
	if _, err := cpuTracker.Get("exec-1"); !errors.Is(err, service.ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound for CPU window, got %v", err)
	}
}
