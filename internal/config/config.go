package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStart      = 0.0
	DefaultStop       = 1000.0
	DefaultSize       = 25.0
	DefaultTolerance  = 1.0
	DefaultWidth      = 0.01
	DefaultErrorScale = 1e-2
)

type Config struct {
	Stepper     string       `yaml:"stepper"`
	Start       float64      `yaml:"start"`
	Stop        float64      `yaml:"stop"`
	Size        float64      `yaml:"size"`
	MinStep     float64      `yaml:"min_step"`
	Tolerance   float64      `yaml:"tolerance"`
	Epsilon     float64      `yaml:"epsilon"`
	Inclusive   bool         `yaml:"inclusive"`
	Record      bool         `yaml:"record"`
	Scaled      ScaledConfig `yaml:"scaled"`
	PID         PIDConfig    `yaml:"pid"`
	RKQS        RKQSConfig   `yaml:"rkqs"`
	Sequence    []float64    `yaml:"sequence"`
	Checkpoints []float64    `yaml:"checkpoints"`
	Demo        DemoConfig   `yaml:"demo"`
}

type ScaledConfig struct {
	Grow   float64 `yaml:"grow"`
	Shrink float64 `yaml:"shrink"`
}

type PIDConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

type RKQSConfig struct {
	Safety    float64 `yaml:"safety"`
	PGrow     float64 `yaml:"pgrow"`
	PShrink   float64 `yaml:"pshrink"`
	MaxGrow   float64 `yaml:"maxgrow"`
	MinShrink float64 `yaml:"minshrink"`
}

type DemoConfig struct {
	Profile    string  `yaml:"profile"`
	Width      float64 `yaml:"width"`
	ErrorScale float64 `yaml:"error_scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Stepper:   "scaled",
		Start:     DefaultStart,
		Stop:      DefaultStop,
		Size:      DefaultSize,
		Tolerance: DefaultTolerance,
		Scaled:    ScaledConfig{Grow: 1.2, Shrink: 0.5},
		PID:       PIDConfig{Kp: 0.075, Ki: 0.175, Kd: 0.01},
		RKQS:      RKQSConfig{Safety: 0.9, PGrow: -0.2, PShrink: -0.25, MaxGrow: 5, MinShrink: 0.1},
		Demo: DemoConfig{
			Profile:    "tanh",
			Width:      DefaultWidth,
			ErrorScale: DefaultErrorScale,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
