package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/dreschagin/executor-monitor/internal/domain/entity"
)

func TestCPUUsageTracker_InitIsIdempotent(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Init("exec-1")
	tracker.Update("exec-1", 42.0)

	// Second Init must leave the recorded sample in place
	tracker.Init("exec-1")

	window, err := tracker.Get("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window[len(window)-1] != 42.0 {
		t.Errorf("expected newest sample 42.0 to survive re-init, got %v", window[len(window)-1])
	}
}

func TestCPUUsageTracker_WarmUpAverage(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Init("exec-1")

	avg, err := tracker.Average("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 100.0 {
		t.Errorf("expected warm-up average 100.0, got %v", avg)
	}
}

func TestCPUUsageTracker_UpdateAutoInits(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Update("exec-1", 25.0)

	window, err := tracker.Get("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(window) != entity.CPUWindowSize {
		t.Fatalf("expected window of %d slots, got %d", entity.CPUWindowSize, len(window))
	}
	if window[len(window)-1] != 25.0 {
		t.Errorf("expected newest sample 25.0, got %v", window[len(window)-1])
	}
}

func TestCPUUsageTracker_FIFOOrder(t *testing.T) {
	tracker := NewCPUUsageTracker()
	for _, s := range []float64{10, 20, 30, 40, 50, 60} {
		tracker.Update("exec-1", s)
	}

	window, err := tracker.Get("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{20, 30, 40, 50, 60}
	for i, want := range expected {
		if window[i] != want {
			t.Errorf("slot %d: expected %v, got %v", i, want, window[i])
		}
	}
}

func TestCPUUsageTracker_ClearRemovesEntry(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Update("exec-1", 50.0)
	tracker.Clear("exec-1")

	if _, err := tracker.Get("exec-1"); !errors.Is(err, ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound after clear, got %v", err)
	}
	if _, err := tracker.Average("exec-1"); !errors.Is(err, ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound after clear, got %v", err)
	}

	// Re-initialization starts a fresh warm-up window
	tracker.Init("exec-1")
	avg, err := tracker.Average("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 100.0 {
		t.Errorf("expected fresh warm-up average 100.0, got %v", avg)
	}
}

func TestCPUUsageTracker_UnknownExecutor(t *testing.T) {
	tracker := NewCPUUsageTracker()

	if _, err := tracker.Get("ghost"); !errors.Is(err, ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound, got %v", err)
	}
	if _, err := tracker.Average("ghost"); !errors.Is(err, ErrExecutorNotFound) {
		t.Errorf("expected ErrExecutorNotFound, got %v", err)
	}
}

func TestCPUUsageTracker_ExecutorIndependence(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Update("exec-1", 10.0)
	tracker.Update("exec-2", 90.0)

	window, err := tracker.Get("exec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window[len(window)-1] != 10.0 {
		t.Errorf("exec-1 newest sample changed by exec-2 update: got %v", window[len(window)-1])
	}
}

func TestCPUUsageTracker_ConcurrentUpdatesAndReads(t *testing.T) {
	tracker := NewCPUUsageTracker()
	tracker.Init("exec-1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Update("exec-1", float64(n*100+j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if window, err := tracker.Get("exec-1"); err == nil && len(window) != entity.CPUWindowSize {
					t.Errorf("window length invariant broken: %d", len(window))
					return
				}
				if _, err := tracker.Average("exec-1"); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
