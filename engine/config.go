// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Engine configuration: defaults, YAML loading, tag validation.

package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polydual/force"
	"github.com/katalvlaran/polydual/quality"
)

// Sentinel errors for the engine package.
var (
	// ErrInvalidConfig indicates a configuration that failed to decode or validate.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrAlreadyRunning indicates Start on a running loop.
	ErrAlreadyRunning = errors.New("engine: already running")

	// ErrNotRunning indicates Stop on an idle loop.
	ErrNotRunning = errors.New("engine: not running")
)

// ApplyConfig holds the force applicator parameters.
type ApplyConfig struct {
	Sectors         int     `yaml:"sectors" validate:"gte=4"`
	Padding         int     `yaml:"padding" validate:"gte=0,ltefield=Sectors"`
	Epsilon         float64 `yaml:"epsilon" validate:"gt=0"`
	MaxDisplacement float64 `yaml:"max_displacement" validate:"gte=0"`
}

// Config is the full engine configuration.
type Config struct {
	Force force.Config `yaml:"force"`
	Apply ApplyConfig  `yaml:"apply"`

	// Interval is the period of the continuous loop.
	Interval time.Duration `yaml:"interval" validate:"gt=0"`

	// Seed drives ApplyRandom; 0 selects the dual package default.
	Seed int64 `yaml:"seed"`

	// Evaluators lists the quality evaluators by name.
	Evaluators []string `yaml:"evaluators" validate:"dive,oneof=cartographic_error polygon_complexity"`

	// Namespace prefixes every exported metric.
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
}

// Defaults.
const (
	DefaultInterval  = 20 * time.Millisecond
	DefaultNamespace = "polydual"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Force: force.DefaultConfig(),
		Apply: ApplyConfig{
			Sectors: force.DefaultSectors,
			Padding: force.DefaultPadding,
			Epsilon: force.DefaultEpsilon,
		},
		Interval:   DefaultInterval,
		Evaluators: quality.Names(),
		Namespace:  DefaultNamespace,
	}
}

var validate = validator.New()

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", f.Namespace(), f.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfigFile(%q): %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfigFile(%q): %w", path, err)
	}
	return cfg, nil
}
