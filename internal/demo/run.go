package demo

import (
	"math"

	"github.com/san-kum/stride"
)

// Result is the attempt trajectory of one traversal.
type Result struct {
	Positions []float64
	Sizes     []float64
	Values    []float64
	Errors    []float64
	Successes []bool
	Attempts  int
	Accepted  int
	Final     float64
}

func (r *Result) append(step *stride.Step, v, e float64, ok bool) {
	r.Positions = append(r.Positions, step.End())
	r.Sizes = append(r.Sizes, step.Size())
	r.Values = append(r.Values, v)
	r.Errors = append(r.Errors, e)
	r.Successes = append(r.Successes, ok)
	r.Attempts++
	if ok {
		r.Accepted++
	}
}

// MaxAcceptedError returns the largest normalized error among accepted
// steps, 0 when nothing was accepted.
func (r *Result) MaxAcceptedError() float64 {
	max := 0.0
	for i, ok := range r.Successes {
		if ok && r.Errors[i] > max {
			max = r.Errors[i]
		}
	}
	return max
}

// Run drives a stepper across a profile. For each proposed step it
// evaluates the profile at the step's end, reports the change since the
// last accepted value scaled by errorScale as the normalized error, and
// records the attempt. Run is the reference caller of the step
// protocol.
func Run(w stride.Walker, prof Profile, errorScale float64) (*Result, error) {
	if errorScale <= 0 {
		errorScale = 1
	}
	res := &Result{}
	old := math.NaN()
	for {
		step, err := w.Next()
		if err != nil {
			res.Final = w.Current()
			return res, err
		}
		if step == nil {
			res.Final = w.Current()
			return res, nil
		}
		if math.IsNaN(old) {
			old = prof(step.Begin())
		}
		v := prof(step.End())
		e := math.Abs(v-old) / errorScale
		ok := step.Succeeded(stride.WithValue(v), stride.WithError(e))
		res.append(step, v, e, ok)
		if ok {
			old = v
		}
	}
}

// RunCheckpointed nests a fresh adaptive stepper inside every interval
// of a checkpoint stepper, so the checkpoints are hit exactly no matter
// how the inner stepper subdivides them. build constructs the inner
// stepper for one interval.
func RunCheckpointed(cp *stride.CheckpointStepper, build func(begin, end float64) (stride.Walker, error), prof Profile, errorScale float64) (*Result, error) {
	res := &Result{}
	old := math.NaN()
	for {
		outer, err := cp.Next()
		if err != nil {
			res.Final = cp.Current()
			return res, err
		}
		if outer == nil {
			res.Final = cp.Current()
			return res, nil
		}

		inner, err := build(outer.Begin(), outer.End())
		if err != nil {
			res.Final = cp.Current()
			return res, err
		}
		for {
			step, err := inner.Next()
			if err != nil {
				res.Final = inner.Current()
				return res, err
			}
			if step == nil {
				break
			}
			if math.IsNaN(old) {
				old = prof(step.Begin())
			}
			v := prof(step.End())
			e := math.Abs(v-old) / errorScale
			ok := step.Succeeded(stride.WithValue(v), stride.WithError(e))
			res.append(step, v, e, ok)
			if ok {
				old = v
			}
		}
		outer.Succeeded()
	}
}
