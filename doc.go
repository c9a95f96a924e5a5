// Package stride provides adaptive step-size control for iterative
// numerical processes such as time integration, parameter sweeps, and
// continuation methods.
//
// A stepper walks a control variable from start toward stop, proposing
// one [Step] at a time. The caller performs whatever computation the
// interval requires, then reports the outcome through [Step.Succeeded],
// optionally with a normalized error. The stepper reacts by advancing,
// or by retrying the same position with a smaller step. The package
// never computes values or derivatives itself.
//
//   - [Step]: one proposed interval with a caller-reported outcome
//   - [FixedStepper]: constant step size
//   - [ScaledStepper]: grow/shrink by fixed factors
//   - [PIDStepper]: PID error-feedback control
//   - [PseudoRKQSStepper]: Numerical Recipes quality-controlled sizing
//   - [SequenceStepper]: sizes drawn from a prescribed sequence
//   - [CheckpointStepper]: mandatory stops, composable with any inner stepper
//
// # Example
//
//	st, _ := stride.NewScaled(0, 1000, 50)
//	for step := range st.Steps() {
//		val := compute(step.End())
//		err := math.Abs(val-old) / errorScale
//		if step.Succeeded(stride.WithValue(val), stride.WithError(err)) {
//			old = val
//		}
//	}
//	if st.Err() != nil {
//		// step size collapsed before reaching stop
//	}
//
// # Thread Safety
//
// Stepper instances are NOT thread-safe. Each traversal owns its stepper
// exclusively; construct a fresh stepper to traverse the same range again.
package stride
