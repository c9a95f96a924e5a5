package demo

import (
	"fmt"

	"github.com/san-kum/stride"
	"github.com/san-kum/stride/internal/config"
)

// Steppers lists the stepper names BuildStepper understands.
func Steppers() []string {
	return []string{"fixed", "scaled", "pid", "rkqs", "sequence", "checkpoint"}
}

// BuildStepper constructs the stepper named by the config.
func BuildStepper(cfg *config.Config) (stride.Walker, error) {
	opts := []stride.Option{}
	if cfg.MinStep > 0 {
		opts = append(opts, stride.WithMinStep(cfg.MinStep))
	}
	if cfg.Tolerance > 0 {
		opts = append(opts, stride.WithTolerance(cfg.Tolerance))
	}
	if cfg.Epsilon > 0 {
		opts = append(opts, stride.WithEpsilon(cfg.Epsilon))
	}
	if cfg.Inclusive {
		opts = append(opts, stride.Inclusive())
	}
	if cfg.Record {
		opts = append(opts, stride.Recording())
	}

	switch cfg.Stepper {
	case "fixed":
		return stride.NewFixed(cfg.Start, cfg.Stop, cfg.Size, opts...)
	case "scaled":
		if cfg.Scaled.Grow > 0 && cfg.Scaled.Shrink > 0 {
			opts = append(opts, stride.WithFactors(cfg.Scaled.Grow, cfg.Scaled.Shrink))
		}
		return stride.NewScaled(cfg.Start, cfg.Stop, cfg.Size, opts...)
	case "pid":
		if cfg.PID != (config.PIDConfig{}) {
			opts = append(opts, stride.WithGains(cfg.PID.Kp, cfg.PID.Ki, cfg.PID.Kd))
		}
		return stride.NewPID(cfg.Start, cfg.Stop, cfg.Size, opts...)
	case "rkqs":
		if cfg.RKQS != (config.RKQSConfig{}) {
			opts = append(opts, stride.WithRKQSControl(cfg.RKQS.Safety, cfg.RKQS.PGrow, cfg.RKQS.PShrink, cfg.RKQS.MaxGrow, cfg.RKQS.MinShrink))
		}
		return stride.NewPseudoRKQS(cfg.Start, cfg.Stop, cfg.Size, opts...)
	case "sequence":
		return stride.NewSequence(cfg.Start, cfg.Stop, cfg.Sequence, opts...)
	case "checkpoint":
		opts = append(opts, stride.WithStop(cfg.Stop))
		return stride.NewCheckpoint(cfg.Start, cfg.Checkpoints, opts...)
	default:
		return nil, fmt.Errorf("unknown stepper: %s", cfg.Stepper)
	}
}
