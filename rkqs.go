package stride

import "math"

// PseudoRKQSStepper applies the step-size quality control of the rkqs
// algorithm from Numerical Recipes in C, 2nd edition, section 16.2,
// without the embedded Runge-Kutta evaluations: the caller supplies the
// normalized error instead.
//
// On success the step grows by min(safety*e^pgrow, maxgrow); on
// rejection it shrinks by max(safety*e^pshrink, minshrink).
type PseudoRKQSStepper struct {
	Stepper
	safety    float64
	pgrow     float64
	pshrink   float64
	maxgrow   float64
	minshrink float64
	errcon    float64
}

// NewPseudoRKQS returns an error-limited stepper with RKQS control
// (defaults 0.9, -0.2, -0.25, 5, 0.1, see WithRKQSControl).
func NewPseudoRKQS(start, stop, size float64, opts ...Option) (*PseudoRKQSStepper, error) {
	o := newSettings(opts)
	r := &PseudoRKQSStepper{
		safety:    0.9,
		pgrow:     -0.2,
		pshrink:   -0.25,
		maxgrow:   5,
		minshrink: 0.1,
	}
	if o.hasRKQS {
		r.safety = o.safety
		r.pgrow = o.pgrow
		r.pshrink = o.pshrink
		r.maxgrow = o.maxgrow
		r.minshrink = o.minshrink
	}
	r.errcon = math.Pow(r.maxgrow/r.safety, 1/r.pgrow)
	if err := r.init(r, start, stop, size, 1, true, o); err != nil {
		return nil, err
	}
	r.saved = size
	r.hasSaved = true
	return r, nil
}

func (r *PseudoRKQSStepper) adapt() (float64, bool) {
	factor := r.maxgrow
	if e := r.lastError(); e > r.errcon {
		factor = r.safety * math.Pow(e, r.pgrow)
	}
	return factor * r.lastSize(), true
}

func (r *PseudoRKQSStepper) shrink() (float64, bool) {
	factor := math.Max(r.safety*math.Pow(r.lastError(), r.pshrink), r.minshrink)
	return factor * r.lastSize(), true
}
