package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultShearModulusGPa is the pre-filled shear modulus (spring steel).
	DefaultShearModulusGPa = 77.0
	DefaultOutput          = "text"
)

// Config holds calculator defaults loaded from a yaml file. These are
// explicit defaults passed into the boundaries, never hidden globals.
type Config struct {
	ShearModulusGPa float64 `yaml:"shear_modulus_gpa"`
	Material        string  `yaml:"material"`
	DeflectionMm    float64 `yaml:"deflection_mm"`
	Output          string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		ShearModulusGPa: DefaultShearModulusGPa,
		Output:          DefaultOutput,
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
