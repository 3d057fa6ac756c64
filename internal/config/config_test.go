package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ShearModulusGPa != 77.0 {
		t.Errorf("expected default shear modulus 77 GPa, got %g", cfg.ShearModulusGPa)
	}
	if cfg.Output != "text" {
		t.Errorf("expected text output, got %s", cfg.Output)
	}
	if cfg.DeflectionMm != 0 {
		t.Error("deflection should default to unset")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "springcalc.yaml")
	data := []byte("shear_modulus_gpa: 69.0\nmaterial: stainless-302\ndeflection_mm: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ShearModulusGPa != 69.0 {
		t.Errorf("expected 69 GPa, got %g", cfg.ShearModulusGPa)
	}
	if cfg.Material != "stainless-302" {
		t.Errorf("expected stainless-302, got %s", cfg.Material)
	}
	if cfg.DeflectionMm != 5 {
		t.Errorf("expected 5 mm, got %g", cfg.DeflectionMm)
	}
	// Omitted keys keep their defaults.
	if cfg.Output != "text" {
		t.Errorf("expected default output, got %s", cfg.Output)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Material = "music-wire"
	cfg.ShearModulusGPa = 79.3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Material != "music-wire" || loaded.ShearModulusGPa != 79.3 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
