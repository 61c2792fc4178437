package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the reference configuration: a 30x40 board
// stepping every 200ms, adjustable between 50ms and 1000ms in 50ms steps,
// with random boards at 30% density.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Rows: 30,
			Cols: 40,
		},
		Speed: SpeedConfig{
			Default: 200,
			Min:     50,
			Max:     1000,
			Step:    50,
		},
		Random: RandomConfig{
			Density: 0.3,
			Seed:    0,
		},
		Stepper: StepperConfig{
			Workers: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
