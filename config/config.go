// Package config loads the corefclean configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "COREFCLEAN_CONFIG"

var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"text", "json"}
)

// Config is the file configuration. Command line flags override it.
type Config struct {
	// Workers is the number of documents cleaned concurrently.
	Workers int `yaml:"workers"`

	// ZeroMentions keeps empty nodes of the gold file as words.
	ZeroMentions bool `yaml:"zero_mentions"`

	Log Log `yaml:"log"`

	// Color and Progress are pointers so that an absent key leaves the
	// terminal detection in charge.
	Color    *bool `yaml:"color"`
	Progress *bool `yaml:"progress"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML configuration file at path. Keys absent from the file
// keep their Default value.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("config: workers must be at least 1, got %d", cfg.Workers))
	}

	if !slices.Contains(Levels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config: log.level %q is not one of %v", cfg.Log.Level, Levels))
	}

	if !slices.Contains(Formats, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config: log.format %q is not one of %v", cfg.Log.Format, Formats))
	}

	return errors.Join(errs...)
}
