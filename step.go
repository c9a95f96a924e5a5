package stride

// Outcome carries optional data with a step verdict.
type Outcome func(*verdict)

type verdict struct {
	value    float64
	err      float64
	hasValue bool
	hasErr   bool
}

// WithValue records a scalar characterizing the step. It is kept in the
// stepper's history when recording is enabled.
func WithValue(v float64) Outcome {
	return func(o *verdict) {
		o.value = v
		o.hasValue = true
	}
}

// WithError reports the normalized error of the step. Values above the
// stepper's tolerance reject the step on error-limited steppers.
func WithError(e float64) Outcome {
	return func(o *verdict) {
		o.err = e
		o.hasErr = true
	}
}

// Step describes one proposed interval [Begin, End] of a traversal.
//
// A Step belongs to exactly one stepper and one position in its
// sequence. The caller computes whatever the interval requires, then
// reports the outcome with Succeeded exactly once before requesting
// the next step.
type Step struct {
	begin float64
	end   float64
	want  float64
	owner *Stepper
}

// Begin returns the starting position of the interval.
func (s *Step) Begin() float64 { return s.begin }

// End returns the target position of the interval.
func (s *Step) End() float64 { return s.end }

// Size returns End - Begin.
func (s *Step) Size() float64 { return s.end - s.begin }

// Want returns the size the stepper wanted before any clamping against
// the end of the range. Want equals Size except on boundary steps.
func (s *Step) Want() float64 { return s.want }

// Succeeded reports the caller's verdict on this step and returns
// whether the stepper accepted it. An accepted step advances the
// stepper; a rejected one retries the same position with a smaller
// size.
//
// Without a WithError outcome the step succeeds unconditionally.
// Succeeded panics with ErrStaleStep if this step is no longer the
// stepper's live step.
func (s *Step) Succeeded(outcomes ...Outcome) bool {
	var v verdict
	for _, o := range outcomes {
		o(&v)
	}
	return s.owner.succeeded(s, v)
}
