package stride

import "errors"

// Domain errors for stepper construction and traversal.
var (
	// ErrConfig indicates invalid construction parameters (bad bounds,
	// non-positive size, non-increasing checkpoints).
	ErrConfig = errors.New("stride: invalid stepper configuration")

	// ErrStaleStep indicates a verdict reported on a step that is no
	// longer the live step of its stepper. This is a caller bug and is
	// raised as a panic.
	ErrStaleStep = errors.New("stride: verdict on stale step")

	// ErrNonConvergence indicates the step size fell below the minimum
	// before the traversal reached stop.
	ErrNonConvergence = errors.New("stride: step size below minimum before reaching stop")
)
