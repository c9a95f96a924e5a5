package stride

import (
	"errors"
	"math"
	"testing"
)

func TestStepper_StaleStepPanics(t *testing.T) {
	st, _ := NewFixed(0, 10, 3)
	step, _ := st.Next()
	step.Succeeded()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on stale verdict")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStaleStep) {
			t.Errorf("expected ErrStaleStep, got %v", r)
		}
	}()
	step.Succeeded()
}

func TestStepper_MonotonicCurrent(t *testing.T) {
	st, _ := NewScaled(0, 50, 1)
	prev := st.Current()
	i := 0
	for {
		step, err := st.Next()
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if step == nil {
			break
		}
		// reject every fifth attempt
		if i%5 == 4 {
			step.Succeeded(WithError(2))
		} else {
			step.Succeeded(WithError(0.5))
		}
		i++

		if st.Current() < prev {
			t.Fatalf("current decreased from %g to %g", prev, st.Current())
		}
		if st.Current() > st.Stop() {
			t.Fatalf("current %g exceeded stop %g", st.Current(), st.Stop())
		}
		prev = st.Current()
	}
	if st.Current() != 50 {
		t.Errorf("expected current 50, got %g", st.Current())
	}
}

func TestStepper_SinglePass(t *testing.T) {
	st, _ := NewFixed(0, 3, 1)
	for {
		step, _ := st.Next()
		if step == nil {
			break
		}
		step.Succeeded()
	}
	for i := 0; i < 3; i++ {
		step, err := st.Next()
		if step != nil || err != nil {
			t.Fatalf("exhausted stepper must keep returning (nil, nil), got (%v, %v)", step, err)
		}
	}
}

func TestStepper_StepsIterator(t *testing.T) {
	st, _ := NewFixed(0, 10, 3)
	count := 0
	for step := range st.Steps() {
		count++
		step.Succeeded()
	}
	if count != 4 {
		t.Errorf("expected 4 steps, got %d", count)
	}
	if st.Err() != nil {
		t.Errorf("expected normal end, got %v", st.Err())
	}
}

func TestStepper_StepsIteratorSurfacesFailure(t *testing.T) {
	st, _ := NewScaled(0, 1, 0.5, WithMinStep(0.01))
	for step := range st.Steps() {
		step.Succeeded(WithError(100))
	}
	if !errors.Is(st.Err(), ErrNonConvergence) {
		t.Errorf("expected ErrNonConvergence after the loop, got %v", st.Err())
	}
}

func TestStepper_HistoryRecording(t *testing.T) {
	st, _ := NewScaled(0, 10, 2, Recording())
	attempts := 0
	for {
		step, _ := st.Next()
		if step == nil {
			break
		}
		attempts++
		if attempts == 2 {
			step.Succeeded(WithError(3))
		} else {
			step.Succeeded(WithValue(float64(attempts)), WithError(0.5))
		}
	}

	h := st.History()
	if len(h.Positions) != attempts {
		t.Fatalf("expected %d recorded attempts, got %d", attempts, len(h.Positions))
	}
	rejected := 0
	for _, ok := range h.Successes {
		if !ok {
			rejected++
		}
	}
	if rejected != 1 {
		t.Errorf("expected exactly 1 recorded rejection, got %d", rejected)
	}
	if h.Values[0] != 1 {
		t.Errorf("expected first recorded value 1, got %g", h.Values[0])
	}
}

func TestStepper_HistoryPurgedWithoutRecording(t *testing.T) {
	st, _ := NewScaled(0, 100, 2)
	for {
		step, _ := st.Next()
		if step == nil {
			break
		}
		step.Succeeded(WithError(0.5))
	}
	h := st.History()
	if len(h.Positions) > 1 {
		t.Errorf("expected purged history, got %d entries", len(h.Positions))
	}
}

func TestStepper_EpsilonSnap(t *testing.T) {
	st, _ := NewFixed(0, 10, 3, WithEpsilon(1.5))
	count := 0
	for {
		step, _ := st.Next()
		if step == nil {
			break
		}
		count++
		step.Succeeded()
	}
	// after (6, 9) the remaining 1 is within epsilon of stop
	if count != 3 {
		t.Errorf("expected 3 steps with snapping, got %d", count)
	}
}

func TestStepper_UnderflowFails(t *testing.T) {
	st, _ := NewScaled(1e16, 1e16+4, 1e-3, WithMinStep(1e-9))
	_, err := st.Next()
	if !errors.Is(err, ErrNonConvergence) {
		t.Errorf("expected ErrNonConvergence on underflow, got %v", err)
	}
}

func TestStepper_DefaultMinStep(t *testing.T) {
	st, _ := NewScaled(0, 1000, 10)
	want := 1000 * (math.Nextafter(1, 2) - 1)
	if st.MinStep() != want {
		t.Errorf("expected default min step %g, got %g", want, st.MinStep())
	}
}

func TestStepper_ToleranceOption(t *testing.T) {
	st, _ := NewScaled(0, 10, 1, WithTolerance(5))
	step, _ := st.Next()
	if !step.Succeeded(WithError(3)) {
		t.Error("error 3 should be accepted with tolerance 5")
	}
	step, _ = st.Next()
	if step.Succeeded(WithError(7)) {
		t.Error("error 7 should reject with tolerance 5")
	}
}
