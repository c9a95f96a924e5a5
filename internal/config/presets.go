package config

import "sort"

// Presets are ready-made traversal setups for the CLI.
var presets = map[string]*Config{
	"smooth": func() *Config {
		c := DefaultConfig()
		c.Stepper = "scaled"
		return c
	}(),
	"stiff": func() *Config {
		c := DefaultConfig()
		c.Stepper = "pid"
		c.Size = 5
		c.Demo.Width = 0.002
		return c
	}(),
	"quality": func() *Config {
		c := DefaultConfig()
		c.Stepper = "rkqs"
		c.Size = 10
		return c
	}(),
	"uniform": func() *Config {
		c := DefaultConfig()
		c.Stepper = "fixed"
		c.Size = 3
		return c
	}(),
	"decades": func() *Config {
		c := DefaultConfig()
		c.Stepper = "checkpoint"
		c.Checkpoints = []float64{1, 10, 100, 1000}
		return c
	}(),
}

// GetPreset returns a copy of the named preset, nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
