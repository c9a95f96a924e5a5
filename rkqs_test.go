package stride

import (
	"math"
	"testing"
)

func TestRKQS_FirstProposalIsSize(t *testing.T) {
	st, err := NewPseudoRKQS(0, 100, 1)
	if err != nil {
		t.Fatalf("NewPseudoRKQS returned error: %v", err)
	}
	step, _ := st.Next()
	if step.Size() != 1 {
		t.Errorf("expected first size 1, got %g", step.Size())
	}
}

func TestRKQS_MaxGrowthOnTinyError(t *testing.T) {
	st, _ := NewPseudoRKQS(0, 100, 1)
	step, _ := st.Next()
	step.Succeeded()

	next, _ := st.Next()
	if math.Abs(next.Size()-5) > 1e-9 {
		t.Errorf("expected max growth to 5, got %g", next.Size())
	}
}

func TestRKQS_ControlledGrowth(t *testing.T) {
	st, _ := NewPseudoRKQS(0, 1000, 1)
	step, _ := st.Next()
	step.Succeeded(WithError(0.5))

	want := 0.9 * math.Pow(0.5, -0.2)
	next, _ := st.Next()
	if math.Abs(next.Size()-want) > 1e-6 {
		t.Errorf("expected size %g, got %g", want, next.Size())
	}
}

func TestRKQS_Shrink(t *testing.T) {
	st, _ := NewPseudoRKQS(0, 100, 1)
	step, _ := st.Next()
	if step.Succeeded(WithError(100)) {
		t.Fatal("error 100 should reject")
	}

	want := 0.9 * math.Pow(100, -0.25)
	retry, _ := st.Next()
	if math.Abs(retry.Size()-want) > 1e-6 {
		t.Errorf("expected size %g, got %g", want, retry.Size())
	}
}

func TestRKQS_ShrinkFloor(t *testing.T) {
	st, _ := NewPseudoRKQS(0, 100, 1)
	step, _ := st.Next()
	step.Succeeded(WithError(1e8))

	// 0.9 * (1e8)^-0.25 is below minshrink, so the floor applies
	retry, _ := st.Next()
	if math.Abs(retry.Size()-0.1) > 1e-9 {
		t.Errorf("expected floored size 0.1, got %g", retry.Size())
	}
}
