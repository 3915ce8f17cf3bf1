package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings that may come from a YAML file; command line flags
// override anything set there.
type Config struct {
	Trace   bool          `yaml:"trace"`
	Prelude bool          `yaml:"prelude"`
	OnError ErrorPolicy   `yaml:"on_error"`
	History string        `yaml:"history"`
	Prompt  string        `yaml:"prompt"`
	Banner  bool          `yaml:"banner"`
	Dump    bool          `yaml:"dump"`
	Timeout time.Duration `yaml:"timeout"`
}

func defaultConfig() Config {
	return Config{
		Prelude: true,
		Prompt:  "clac> ",
		Banner:  true,
	}
}

// LoadConfig reads a YAML config file, starting from base; keys missing
// from the file keep their base value, unknown keys are an error.
func LoadConfig(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f, path, base)
}

func decodeConfig(r io.Reader, name string, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	var policy ErrorPolicy
	if err := policy.Set(string(cfg.OnError)); err != nil {
		return err
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("negative timeout %v", cfg.Timeout)
	}
	return nil
}
