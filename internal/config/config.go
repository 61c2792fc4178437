// Package config provides YAML-based configuration loading for the Game of
// Life engine and its front ends.
package config

import (
	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-life/internal/life"
)

// LifeConfig contains all tunable parameters of a board.
type LifeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Random  RandomConfig  `yaml:"random"`
	Stepper StepperConfig `yaml:"stepper"`
}

// GridConfig defines the board dimensions. They are fixed for the lifetime
// of an engine.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpeedConfig defines the step interval in milliseconds.
type SpeedConfig struct {
	Default int `yaml:"default"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"` // Increment used by the +/- keys
}

// RandomConfig controls random board generation.
type RandomConfig struct {
	Density float64 `yaml:"density"` // Probability a cell starts alive
	Seed    int64   `yaml:"seed"`    // 0 = seeded from the clock
}

// StepperConfig controls how a generation is computed.
type StepperConfig struct {
	Workers int `yaml:"workers"` // Row bands evaluated concurrently (1 = sequential)
}

// Validate checks that the configuration describes a usable board.
func (c LifeConfig) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return errors.Errorf("grid must have positive dimensions, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Speed.Min <= 0 {
		return errors.Errorf("speed.min must be positive, got %d", c.Speed.Min)
	}
	if c.Speed.Min > c.Speed.Max {
		return errors.Errorf("speed.min (%d) exceeds speed.max (%d)", c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Default < c.Speed.Min || c.Speed.Default > c.Speed.Max {
		return errors.Errorf("speed.default (%d) outside [%d, %d]", c.Speed.Default, c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Step <= 0 {
		return errors.Errorf("speed.step must be positive, got %d", c.Speed.Step)
	}
	if c.Random.Density < 0 || c.Random.Density > 1 {
		return errors.Errorf("random.density must be within [0, 1], got %g", c.Random.Density)
	}
	if c.Stepper.Workers < 0 {
		return errors.Errorf("stepper.workers must not be negative, got %d", c.Stepper.Workers)
	}
	return nil
}

// EngineConfig converts the configuration into engine parameters.
func (c LifeConfig) EngineConfig() life.Config {
	return life.Config{
		Rows:     c.Grid.Rows,
		Cols:     c.Grid.Cols,
		Speed:    c.Speed.Default,
		MinSpeed: c.Speed.Min,
		MaxSpeed: c.Speed.Max,
		Density:  c.Random.Density,
		Seed:     c.Random.Seed,
		Workers:  c.Stepper.Workers,
	}
}
