package demo

import (
	"fmt"
	"math"
)

// Profile is a synthetic scalar function of the control variable, used
// to exercise steppers from the CLI and tests.
type Profile func(x float64) float64

// Tanh changes abruptly but smoothly halfway through the range:
// tanh((x/total - 1/2) / (2*width)).
func Tanh(total, width float64) Profile {
	return func(x float64) float64 {
		return math.Tanh((x/total - 0.5) / (2 * width))
	}
}

// Ramp rises linearly from 0 to 1 across the range.
func Ramp(total float64) Profile {
	return func(x float64) float64 {
		return x / total
	}
}

// Pulse is a Gaussian bump centered halfway through the range.
func Pulse(total, width float64) Profile {
	return func(x float64) float64 {
		d := x/total - 0.5
		return math.Exp(-d * d / (2 * width * width))
	}
}

// ByName resolves a profile by its CLI name.
func ByName(name string, total, width float64) (Profile, error) {
	switch name {
	case "tanh":
		return Tanh(total, width), nil
	case "ramp":
		return Ramp(total), nil
	case "pulse":
		return Pulse(total, width), nil
	default:
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
}
