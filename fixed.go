package stride

// FixedStepper takes steps of constant size. Error feedback is ignored
// and every step is accepted; the final step is clamped so the
// traversal lands exactly on stop.
type FixedStepper struct {
	Stepper
}

// NewFixed returns a stepper that tiles [start, stop] with steps of the
// given size.
func NewFixed(start, stop, size float64, opts ...Option) (*FixedStepper, error) {
	o := newSettings(opts)
	f := &FixedStepper{}
	if err := f.init(f, start, stop, size, 1, false, o); err != nil {
		return nil, err
	}
	return f, nil
}
