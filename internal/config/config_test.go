package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stepper != "scaled" {
		t.Errorf("expected stepper scaled, got %s", cfg.Stepper)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.Stop <= cfg.Start {
		t.Error("stop should be above start")
	}
	if cfg.Tolerance != DefaultTolerance {
		t.Errorf("expected tolerance %g, got %g", DefaultTolerance, cfg.Tolerance)
	}
	if cfg.Scaled.Grow != 1.2 || cfg.Scaled.Shrink != 0.5 {
		t.Errorf("unexpected scaled factors: %+v", cfg.Scaled)
	}
	if cfg.Demo.Profile != "tanh" {
		t.Errorf("expected demo profile tanh, got %s", cfg.Demo.Profile)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("stiff")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Stepper != "pid" {
		t.Errorf("expected pid stepper, got %s", cfg.Stepper)
	}
	if cfg.Size != 5 {
		t.Errorf("expected size 5, got %g", cfg.Size)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	a := GetPreset("smooth")
	a.Size = 999
	b := GetPreset("smooth")
	if b.Size == 999 {
		t.Error("mutating a preset copy must not change the stored preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected preset names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.yaml")

	cfg := DefaultConfig()
	cfg.Stepper = "pid"
	cfg.Stop = 250
	cfg.Checkpoints = []float64{1, 10, 100}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Stepper != "pid" {
		t.Errorf("expected stepper pid, got %s", loaded.Stepper)
	}
	if loaded.Stop != 250 {
		t.Errorf("expected stop 250, got %g", loaded.Stop)
	}
	if len(loaded.Checkpoints) != 3 || loaded.Checkpoints[2] != 100 {
		t.Errorf("unexpected checkpoints: %v", loaded.Checkpoints)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
