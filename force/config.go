// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Strengths and constants of the force terms.

package force

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Config holds the force term strengths and shaping constants.
type Config struct {
	Repulsion     float64 `yaml:"repulsion" validate:"gte=0"`
	Attraction    float64 `yaml:"attraction" validate:"gte=0"`
	EdgeRepulsion float64 `yaml:"edge_repulsion" validate:"gte=0"`
	Pressure      float64 `yaml:"pressure" validate:"gte=0"`
	Angle         float64 `yaml:"angle" validate:"gte=0"`

	// ReferenceLength is the edge length at which attraction vanishes.
	ReferenceLength float64 `yaml:"reference_length" validate:"gt=0"`

	// LocalityThreshold restricts repulsion to vertices sharing a face once
	// the graph has more faces than this. Zero means always all pairs.
	LocalityThreshold int `yaml:"locality_threshold" validate:"gte=0"`

	// PressureFloor and PressureCeil clamp the pressure ratio before the log.
	PressureFloor float64 `yaml:"pressure_floor" validate:"gt=0"`
	PressureCeil  float64 `yaml:"pressure_ceil" validate:"gtfield=PressureFloor"`
}

// Defaults.
const (
	DefaultRepulsion         = 10000.0
	DefaultAttraction        = 10.0
	DefaultEdgeRepulsion     = 10000.0
	DefaultPressure          = 20.0
	DefaultAngle             = 5.0
	DefaultReferenceLength   = 100.0
	DefaultLocalityThreshold = 64
	DefaultPressureFloor     = 0.01
	DefaultPressureCeil      = 100.0
)

// minDistance is the separation below which pairwise terms are skipped.
const minDistance = 1e-9

// DefaultConfig returns the default strengths.
func DefaultConfig() Config {
	return Config{
		Repulsion:         DefaultRepulsion,
		Attraction:        DefaultAttraction,
		EdgeRepulsion:     DefaultEdgeRepulsion,
		Pressure:          DefaultPressure,
		Angle:             DefaultAngle,
		ReferenceLength:   DefaultReferenceLength,
		LocalityThreshold: DefaultLocalityThreshold,
		PressureFloor:     DefaultPressureFloor,
		PressureCeil:      DefaultPressureCeil,
	}
}

var validate = validator.New()

// check applies the struct tags, then rejects infinite strengths. Fields are
// checked in declaration order, so the first bad field is the one reported.
func (c Config) check() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return fmt.Errorf("force: %s failed %s: %w", fields[0].Field(), fields[0].Tag(), ErrInvalidConfig)
		}
		return fmt.Errorf("force: %w: %w", ErrInvalidConfig, err)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"Repulsion", c.Repulsion},
		{"Attraction", c.Attraction},
		{"EdgeRepulsion", c.EdgeRepulsion},
		{"Pressure", c.Pressure},
		{"Angle", c.Angle},
		{"ReferenceLength", c.ReferenceLength},
		{"PressureCeil", c.PressureCeil},
	} {
		if math.IsInf(f.v, 0) {
			return fmt.Errorf("force: %s=%v: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	return nil
}
