package stride

import (
	"fmt"
	"iter"
	"math"
)

var machEps = math.Nextafter(1, 2) - 1

// sizer is the policy hook each stepper variant implements. adapt picks
// the next size after a success, shrink picks the retry size after a
// rejection. A false second return means the policy has no size left:
// normal exhaustion for adapt, non-convergence for shrink.
type sizer interface {
	adapt() (float64, bool)
	shrink() (float64, bool)
}

// Walker is the traversal surface shared by all stepper variants.
type Walker interface {
	Next() (*Step, error)
	Start() float64
	Stop() float64
	Current() float64
	Retries() int
	Err() error
}

// Stepper holds the shared traversal state machine. It is embedded by
// the concrete stepper variants and is not usable on its own.
type Stepper struct {
	start     float64
	stop      float64
	current   float64
	minStep   float64
	tolerance float64
	epsilon   float64
	inclusive bool
	record    bool
	limiting  bool

	// history of attempts; seeded with `needs` artificial successes so
	// feedback policies always have enough entries to look back on.
	positions []float64
	sizes     []float64
	values    []float64
	errs      []float64
	successes []bool
	needs     int

	saved    float64
	hasSaved bool
	retries  int
	live     *Step
	done     bool
	err      error
	policy   sizer
}

func (s *Stepper) init(pol sizer, start, stop, size float64, needs int, limiting bool, o *settings) error {
	if math.IsNaN(start) || math.IsNaN(stop) || start >= stop {
		return fmt.Errorf("%w: start %g must be less than stop %g", ErrConfig, start, stop)
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return fmt.Errorf("%w: step size %g must be positive and finite", ErrConfig, size)
	}

	s.start = start
	s.stop = stop
	s.current = start
	s.minStep = o.resolveMinStep(start, stop, size)
	s.tolerance = o.tolerance
	s.epsilon = o.epsilon
	s.inclusive = o.inclusive
	s.record = o.record
	s.limiting = limiting
	if o.hasLimit {
		s.limiting = o.limiting
	}
	s.needs = needs
	s.policy = pol

	s.sizes = make([]float64, needs)
	s.values = make([]float64, needs)
	s.errs = make([]float64, needs)
	s.successes = make([]bool, needs)
	s.positions = make([]float64, needs)
	for i := 0; i < needs; i++ {
		s.sizes[i] = size
		s.values[i] = math.NaN()
		s.errs[i] = 1
		s.successes[i] = true
		s.positions[i] = start - float64(needs-i)*size
	}
	return nil
}

// Start returns the beginning of the traversal range.
func (s *Stepper) Start() float64 { return s.start }

// Stop returns the end of the traversal range.
func (s *Stepper) Stop() float64 { return s.stop }

// Current returns the position reached so far.
func (s *Stepper) Current() float64 { return s.current }

// MinStep returns the smallest permissible step size.
func (s *Stepper) MinStep() float64 { return s.minStep }

// Retries returns how many rejected attempts have been made at the
// current position since the last acceptance.
func (s *Stepper) Retries() int { return s.retries }

// Err returns the terminal condition of the traversal: nil after a
// normal exhaustion, ErrNonConvergence if the step size collapsed
// before reaching stop.
func (s *Stepper) Err() error { return s.err }

// Next returns the next proposed step, or (nil, nil) once the traversal
// has reached stop. A non-nil error means the traversal ended
// abnormally and stays terminal on subsequent calls.
func (s *Stepper) Next() (*Step, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done || s.reached() {
		s.done = true
		s.live = nil
		return nil, nil
	}

	var want float64
	switch {
	case s.hasSaved:
		want = s.saved
	case s.successes[len(s.successes)-1]:
		w, ok := s.policy.adapt()
		if !ok {
			s.done = true
			s.live = nil
			return nil, nil
		}
		want = w
	default:
		w, ok := s.policy.shrink()
		if !ok {
			return nil, s.fail(fmt.Errorf("%w: no smaller size available at %g", ErrNonConvergence, s.current))
		}
		if w < s.minStep {
			return nil, s.fail(fmt.Errorf("%w: size %g under floor %g at %g", ErrNonConvergence, w, s.minStep, s.current))
		}
		want = w
	}

	size := want
	if !s.inclusive {
		if size < s.minStep {
			size = s.minStep
		}
		if s.current+size == s.current {
			return nil, s.fail(fmt.Errorf("%w: step size underflow: %g + %g == %g", ErrNonConvergence, s.current, size, s.current))
		}
	}

	if remaining := s.stop - s.current; size > remaining {
		s.saved = size
		s.hasSaved = true
		size = remaining
	} else {
		s.hasSaved = false
	}

	begin, end := s.current, s.current+size
	if s.inclusive {
		// extra evaluation ending at start
		begin, end = s.current-size, s.current
	}

	if !s.record {
		s.purge()
	}

	s.live = &Step{begin: begin, end: end, want: want, owner: s}
	return s.live, nil
}

// Steps returns the remaining traversal as a single-pass sequence.
// Check Err after the loop for abnormal termination.
func (s *Stepper) Steps() iter.Seq[*Step] {
	return func(yield func(*Step) bool) {
		for {
			step, err := s.Next()
			if err != nil || step == nil {
				return
			}
			if !yield(step) {
				return
			}
		}
	}
}

func (s *Stepper) fail(err error) error {
	s.err = err
	s.live = nil
	return err
}

func (s *Stepper) reached() bool {
	if s.current >= s.stop {
		return true
	}
	return s.epsilon > 0 && s.stop-s.current <= s.epsilon
}

func (s *Stepper) succeeded(step *Step, v verdict) bool {
	if step == nil || step != s.live {
		panic(fmt.Errorf("%w: step is not the live step of its stepper", ErrStaleStep))
	}
	s.live = nil

	success := true
	if s.limiting && v.hasErr && v.err > s.tolerance {
		success = false
	}
	if s.inclusive {
		success = true
		s.inclusive = false
	}

	e := 0.0
	if v.hasErr {
		e = v.err
	}
	val := math.NaN()
	if v.hasValue {
		val = v.value
	}

	s.positions = append(s.positions, step.end)
	s.sizes = append(s.sizes, step.end-step.begin)
	s.values = append(s.values, val)
	s.successes = append(s.successes, success)
	// keep recorded errors strictly positive for feedback formulas
	s.errs = append(s.errs, e+machEps)

	if success {
		s.current = step.end
		s.retries = 0
	} else {
		s.hasSaved = false
		s.retries++
	}
	return success
}

// purge drops failed attempts and successes no longer needed by the
// policy's lookback window.
func (s *Stepper) purge() {
	keep := make([]int, 0, len(s.successes))
	for i, ok := range s.successes {
		if ok {
			keep = append(keep, i)
		}
	}
	if len(keep) > s.needs {
		keep = keep[len(keep)-s.needs:]
	}

	positions := make([]float64, len(keep))
	sizes := make([]float64, len(keep))
	values := make([]float64, len(keep))
	errs := make([]float64, len(keep))
	successes := make([]bool, len(keep))
	for j, i := range keep {
		positions[j] = s.positions[i]
		sizes[j] = s.sizes[i]
		values[j] = s.values[i]
		errs[j] = s.errs[i]
		successes[j] = s.successes[i]
	}
	s.positions = positions
	s.sizes = sizes
	s.values = values
	s.errs = errs
	s.successes = successes
}

func (s *Stepper) lastSize() float64 { return s.sizes[len(s.sizes)-1] }

func (s *Stepper) lastError() float64 { return s.errs[len(s.errs)-1] }

// adapt is the default policy: repeat the last size.
func (s *Stepper) adapt() (float64, bool) { return s.lastSize(), true }

// shrink is the default policy: retry with the last size unchanged.
// Variants that support rejection override this.
func (s *Stepper) shrink() (float64, bool) { return s.lastSize(), true }

// History is the record of step attempts, in attempt order. Values and
// Errors hold NaN and 0 (plus a tiny offset) where the caller reported
// none. Only recording steppers retain the full trajectory.
type History struct {
	Positions []float64
	Sizes     []float64
	Values    []float64
	Errors    []float64
	Successes []bool
}

// History returns a copy of the attempt record, excluding the seeded
// artificial entries.
func (s *Stepper) History() History {
	n := s.needs
	if n > len(s.positions) {
		n = len(s.positions)
	}
	h := History{
		Positions: make([]float64, len(s.positions)-n),
		Sizes:     make([]float64, len(s.sizes)-n),
		Values:    make([]float64, len(s.values)-n),
		Errors:    make([]float64, len(s.errs)-n),
		Successes: make([]bool, len(s.successes)-n),
	}
	copy(h.Positions, s.positions[n:])
	copy(h.Sizes, s.sizes[n:])
	copy(h.Values, s.values[n:])
	copy(h.Errors, s.errs[n:])
	copy(h.Successes, s.successes[n:])
	return h
}
