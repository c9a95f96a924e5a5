package stride

import (
	"fmt"
	"math"
)

// CheckpointStepper stops at a prescribed strictly increasing sequence
// of positions. It performs no size adaptation: each step spans exactly
// one checkpoint interval and always succeeds once reported.
//
// Nest an adaptive stepper over [step.Begin(), step.End()] inside each
// checkpoint interval to guarantee the checkpoints are hit exactly no
// matter how the inner stepper subdivides them.
type CheckpointStepper struct {
	Stepper
	stops []float64
	idx   int
}

// NewCheckpoint returns a stepper over the given checkpoint positions.
// Every stop must exceed its predecessor and the first must exceed
// start. The overall range is unbounded unless WithStop is given, in
// which case checkpoints beyond it are truncated and the traversal
// ends at that stop.
func NewCheckpoint(start float64, stops []float64, opts ...Option) (*CheckpointStepper, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: checkpoint sequence is empty", ErrConfig)
	}
	prev := start
	for i, v := range stops {
		if math.IsNaN(v) || v <= prev {
			return nil, fmt.Errorf("%w: checkpoint %g at index %d must exceed %g", ErrConfig, v, i, prev)
		}
		prev = v
	}

	o := newSettings(opts)
	stop := math.Inf(1)
	if o.hasStop {
		stop = o.stop
	}

	seq := make([]float64, 0, len(stops)+1)
	if o.inclusive {
		// the leading evaluation is a zero-size step at start
		seq = append(seq, start)
	}
	seq = append(seq, stops...)

	c := &CheckpointStepper{stops: seq}
	if err := c.init(c, start, stop, stops[0]-start, 1, false, o); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CheckpointStepper) adapt() (float64, bool) {
	if c.idx >= len(c.stops) {
		return 0, false
	}
	v := c.stops[c.idx]
	c.idx++
	return v - c.current, true
}
