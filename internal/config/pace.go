package config

import "github.com/pkg/errors"

// Pace is a named speed preset.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// Paces lists the presets in display order.
var Paces = []Pace{PaceSlow, PaceNormal, PaceFast}

// SpeedForPace returns the step interval in milliseconds for a preset.
func SpeedForPace(p Pace) (int, error) {
	switch p {
	case PaceSlow:
		return 500, nil
	case PaceNormal:
		return 200, nil
	case PaceFast:
		return 50, nil
	default:
		return 0, errors.Errorf("unknown pace %q (want slow, normal or fast)", p)
	}
}

// ApplyPace sets the default speed from a preset, clamped to the configured
// bounds. An empty pace leaves the configuration unchanged.
func ApplyPace(cfg *LifeConfig, p Pace) error {
	if p == "" {
		return nil
	}
	ms, err := SpeedForPace(p)
	if err != nil {
		return err
	}
	cfg.Speed.Default = max(cfg.Speed.Min, min(cfg.Speed.Max, ms))
	return nil
}
