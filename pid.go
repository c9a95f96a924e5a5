package stride

import "math"

// PIDStepper sizes steps with a PID controller on the normalized error:
//
//	next = (e[n-1]/e[n])^kP * (1/e[n])^kI * (e[n-1]^2/(e[n]*e[n-2]))^kD * prev
//
// On rejection it retries with min(1/e[n], 0.8) times the failed size.
// Control strategy after Valli, Carey and Coutinho, Int. J. Numer.
// Meth. Fluids 47 (2005) 201-231.
type PIDStepper struct {
	Stepper
	kp, ki, kd float64
	prev       float64
}

// NewPID returns an error-limited stepper with PID feedback control
// (default gains 0.075, 0.175, 0.01, see WithGains).
func NewPID(start, stop, size float64, opts ...Option) (*PIDStepper, error) {
	o := newSettings(opts)
	p := &PIDStepper{kp: 0.075, ki: 0.175, kd: 0.01}
	if o.hasGains {
		p.kp, p.ki, p.kd = o.kp, o.ki, o.kd
	}
	// the feedback formula looks back two errors, so seed three
	if err := p.init(p, start, stop, size, 3, true, o); err != nil {
		return nil, err
	}
	p.saved = size
	p.hasSaved = true
	return p, nil
}

func (p *PIDStepper) adapt() (float64, bool) {
	n := len(p.errs)
	e0, e1, e2 := p.errs[n-1], p.errs[n-2], p.errs[n-3]
	factor := math.Pow(e1/e0, p.kp) *
		math.Pow(1/e0, p.ki) *
		math.Pow(e1*e1/(e0*e2), p.kd)

	base := p.prev
	if base == 0 {
		base = p.lastSize()
	}
	next := factor * base
	p.prev = next
	return next, true
}

func (p *PIDStepper) shrink() (float64, bool) {
	last := p.lastSize()
	prev := p.prev
	if prev == 0 {
		prev = p.minStep
	}
	p.prev = last * last / prev

	factor := math.Min(1/p.lastError(), 0.8)
	return factor * last, true
}
