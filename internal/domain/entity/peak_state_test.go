package entity

import (
	"testing"

	"github.com/dreschagin/executor-monitor/internal/domain/valueobject"
)

func mustSnapshot(t *testing.T, values []int64) valueobject.Snapshot {
	t.Helper()

	snapshot, err := valueobject.NewSnapshot(values)
	if err != nil {
		t.Fatalf("failed to build snapshot: %v", err)
	}
	return snapshot
}

func flatSnapshot(t *testing.T, value int64) valueobject.Snapshot {
	t.Helper()

	values := make([]int64, valueobject.MetricKindCount)
	for i := range values {
		values[i] = value
	}
	return mustSnapshot(t, values)
}

func TestNewPeakState_SentinelInvariant(t *testing.T) {
	state := NewPeakState()

	values := state.Values()
	if values[0] != -1 {
		t.Errorf("expected slot 0 to hold sentinel -1, got %d", values[0])
	}
	for i := 1; i < len(values); i++ {
		if values[i] != 0 {
			t.Errorf("expected slot %d to be 0, got %d", i, values[i])
		}
	}
	if state.Recorded() {
		t.Error("fresh state must not report recorded")
	}
}

func TestPeakState_FirstUpdateAlwaysReportsChange(t *testing.T) {
	// Even an all-zero snapshot beats the slot-0 sentinel
	state := NewPeakState()

	if updated := state.CompareAndUpdate(flatSnapshot(t, 0)); !updated {
		t.Error("first CompareAndUpdate must report updated=true")
	}
	if !state.Recorded() {
		t.Error("state must report recorded after first snapshot")
	}
}

func TestPeakState_Monotonicity(t *testing.T) {
	state := NewPeakState()

	sequences := [][]int64{
		{100, 5, 10, 0, 7, 3, 17, 3, 50, 200, 1000},
		{90, 8, 10, 2, 6, 1, 16, 3, 60, 150, 2000},
		{120, 2, 4, 1, 9, 5, 13, 6, 10, 300, 1500},
	}

	expected := make([]int64, valueobject.MetricKindCount)
	for i := range expected {
		expected[i] = sequences[0][i]
		for _, seq := range sequences[1:] {
			if seq[i] > expected[i] {
				expected[i] = seq[i]
			}
		}
	}

	for _, seq := range sequences {
		prev := state.Values()
		state.CompareAndUpdate(mustSnapshot(t, seq))
		for i, v := range state.Values() {
			if v < prev[i] {
				t.Errorf("slot %d decreased from %d to %d", i, prev[i], v)
			}
		}
	}

	for i, v := range state.Values() {
		if v != expected[i] {
			t.Errorf("slot %d: expected running maximum %d, got %d", i, expected[i], v)
		}
	}
}

func TestPeakState_SlotsUpdateIndependently(t *testing.T) {
	state := NewPeakState()
	state.CompareAndUpdate(flatSnapshot(t, 50))

	// Raise a single slot; the others must keep their peaks
	values := make([]int64, valueobject.MetricKindCount)
	for i := range values {
		values[i] = 10
	}
	values[valueobject.CPUTime.Index()] = 500

	if updated := state.CompareAndUpdate(mustSnapshot(t, values)); !updated {
		t.Error("expected update for the raised slot")
	}

	for _, kind := range valueobject.AllMetricKinds() {
		want := int64(50)
		if kind == valueobject.CPUTime {
			want = 500
		}
		if got := state.Peak(kind); got != want {
			t.Errorf("%s: expected peak %d, got %d", kind.Name(), want, got)
		}
	}
}

func TestPeakState_NoChangeReportsFalse(t *testing.T) {
	state := NewPeakState()
	state.CompareAndUpdate(flatSnapshot(t, 50))

	if updated := state.CompareAndUpdate(flatSnapshot(t, 50)); updated {
		t.Error("identical snapshot must not report updated")
	}
	if updated := state.CompareAndUpdate(flatSnapshot(t, 10)); updated {
		t.Error("lower snapshot must not report updated")
	}
}

func TestPeakState_ResetIdempotence(t *testing.T) {
	state := NewPeakState()
	state.CompareAndUpdate(flatSnapshot(t, 75))

	state.Reset()
	afterFirst := state.Values()
	state.Reset()
	afterSecond := state.Values()

	fresh := NewPeakState().Values()
	for i := range fresh {
		if afterFirst[i] != fresh[i] || afterSecond[i] != fresh[i] {
			t.Errorf("slot %d: reset state differs from fresh state", i)
		}
	}
}

func TestPeakState_ValuesReturnsCopy(t *testing.T) {
	state := NewPeakState()
	values := state.Values()
	values[0] = 9999

	if state.Values()[0] != -1 {
		t.Error("mutating the returned slice must not affect internal state")
	}
}

func TestPeakState_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on snapshot length mismatch")
		}
	}()

	state := NewPeakState()
	state.CompareAndUpdate(valueobject.Snapshot{})
}
