package stride

import "math"

// Option configures a stepper at construction.
type Option func(*settings)

type settings struct {
	minStep    float64
	hasMinStep bool
	tolerance  float64
	epsilon    float64
	inclusive  bool
	record     bool
	stop       float64
	hasStop    bool
	limiting   bool
	hasLimit   bool

	growFactor   float64
	shrinkFactor float64

	kp, ki, kd float64
	hasGains   bool

	safety, pgrow, pshrink, maxgrow, minshrink float64
	hasRKQS                                    bool
}

func newSettings(opts []Option) *settings {
	o := &settings{tolerance: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMinStep sets the smallest permissible step size. A shrink below
// this floor terminates the traversal with ErrNonConvergence. The
// default is (stop - start) times the machine epsilon.
func WithMinStep(v float64) Option {
	return func(o *settings) {
		o.minStep = v
		o.hasMinStep = true
	}
}

// WithTolerance sets the normalized-error threshold separating
// acceptance from rejection (default 1).
func WithTolerance(v float64) Option {
	return func(o *settings) { o.tolerance = v }
}

// WithEpsilon sets the boundary comparison tolerance: a position within
// epsilon of stop is treated as having reached stop. The default of 0
// relies on exact clamping, which always lands the final step on stop.
func WithEpsilon(v float64) Option {
	return func(o *settings) { o.epsilon = v }
}

// Inclusive requests an extra leading step that ends at start, so the
// caller evaluates the starting position as well.
func Inclusive() Option {
	return func(o *settings) { o.inclusive = true }
}

// Recording keeps the full history of step attempts, accessible through
// History. Without it only the window the policy needs is retained.
func Recording() Option {
	return func(o *settings) { o.record = true }
}

// WithStop bounds a CheckpointStepper by an overall stop. Checkpoints
// beyond it are truncated; the default is +Inf.
func WithStop(v float64) Option {
	return func(o *settings) {
		o.stop = v
		o.hasStop = true
	}
}

// WithLimiting overrides whether error feedback can reject steps. Each
// stepper variant has its own default; SequenceStepper uses this to
// enable scanning fallback on rejection.
func WithLimiting(on bool) Option {
	return func(o *settings) {
		o.limiting = on
		o.hasLimit = true
	}
}

// WithFactors sets the growth and shrink factors of a ScaledStepper
// (defaults 1.2 and 0.5).
func WithFactors(grow, shrink float64) Option {
	return func(o *settings) {
		o.growFactor = grow
		o.shrinkFactor = shrink
	}
}

// WithGains sets the PID coefficients of a PIDStepper
// (defaults 0.075, 0.175, 0.01).
func WithGains(kp, ki, kd float64) Option {
	return func(o *settings) {
		o.kp, o.ki, o.kd = kp, ki, kd
		o.hasGains = true
	}
}

// WithRKQSControl sets the control constants of a PseudoRKQSStepper
// (defaults 0.9, -0.2, -0.25, 5, 0.1).
func WithRKQSControl(safety, pgrow, pshrink, maxgrow, minshrink float64) Option {
	return func(o *settings) {
		o.safety = safety
		o.pgrow = pgrow
		o.pshrink = pshrink
		o.maxgrow = maxgrow
		o.minshrink = minshrink
		o.hasRKQS = true
	}
}

func (o *settings) resolveMinStep(start, stop, size float64) float64 {
	if o.hasMinStep {
		return o.minStep
	}
	if math.IsInf(stop, 1) {
		return size * machEps
	}
	return (stop - start) * machEps
}
