package stride

// ScaledStepper adjusts the step by fixed factors: grow by growFactor
// after an accepted step, shrink by shrinkFactor on rejection.
type ScaledStepper struct {
	Stepper
	growFactor   float64
	shrinkFactor float64
}

// NewScaled returns an error-limited stepper with multiplicative
// growth and shrinkage (defaults 1.2 and 0.5, see WithFactors).
func NewScaled(start, stop, size float64, opts ...Option) (*ScaledStepper, error) {
	o := newSettings(opts)
	sc := &ScaledStepper{growFactor: 1.2, shrinkFactor: 0.5}
	if o.growFactor > 0 {
		sc.growFactor = o.growFactor
	}
	if o.shrinkFactor > 0 {
		sc.shrinkFactor = o.shrinkFactor
	}
	if err := sc.init(sc, start, stop, size, 1, true, o); err != nil {
		return nil, err
	}
	// first proposal is the suggested size itself; growth starts after
	// the first real success
	sc.saved = size
	sc.hasSaved = true
	return sc, nil
}

func (s *ScaledStepper) adapt() (float64, bool) {
	return s.lastSize() * s.growFactor, true
}

func (s *ScaledStepper) shrink() (float64, bool) {
	return s.lastSize() * s.shrinkFactor, true
}
