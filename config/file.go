package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Config mirrors the yaml pipeline configuration file.
type Config struct {
	Capacity       int `yaml:"capacity"`
	NumReqPerCycle int `yaml:"req_per_cycle"`
	FreqMHz        int `yaml:"freq_mhz"`
}

// LoadConfig reads a pipeline configuration from a yaml file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
