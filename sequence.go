package stride

import (
	"fmt"
	"math"
)

// SequenceStepper draws step sizes from a prescribed ordered sequence
// instead of computing them. The traversal ends at stop or when the
// sequence runs out, whichever comes first.
//
// By default error feedback is ignored. With WithLimiting(true) a
// rejected step retries with the largest prescribed size strictly
// smaller than the rejected one; exhausting smaller alternatives ends
// the traversal with ErrNonConvergence.
type SequenceStepper struct {
	Stepper
	seq []float64
	idx int
}

// NewSequence returns a stepper over the given sizes.
func NewSequence(start, stop float64, sizes []float64, opts ...Option) (*SequenceStepper, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: size sequence is empty", ErrConfig)
	}
	for i, v := range sizes {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, fmt.Errorf("%w: size %g at index %d must be positive and finite", ErrConfig, v, i)
		}
	}

	o := newSettings(opts)
	seq := make([]float64, 0, len(sizes)+1)
	if o.inclusive {
		// the leading evaluation at start consumes one entry
		seq = append(seq, sizes[0])
	}
	seq = append(seq, sizes...)

	sq := &SequenceStepper{seq: seq}
	if err := sq.init(sq, start, stop, sizes[0], 1, false, o); err != nil {
		return nil, err
	}
	return sq, nil
}

func (s *SequenceStepper) adapt() (float64, bool) {
	if s.idx >= len(s.seq) {
		return 0, false
	}
	v := s.seq[s.idx]
	s.idx++
	return v, true
}

func (s *SequenceStepper) shrink() (float64, bool) {
	rejected := s.lastSize()
	best := -1.0
	for _, v := range s.seq {
		if v < rejected && v > best {
			best = v
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
