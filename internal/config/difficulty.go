package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the config for a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyPreset(cfg *TrafficConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartSpeed = max(0, cfg.Difficulty.StartSpeed-1)
		cfg.Difficulty.IntervalMs = cfg.Difficulty.IntervalMs * 3 / 2
		cfg.Scoring.MaxCollisions = 7
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 3
		cfg.Difficulty.StartSpeed += 2 * cfg.Difficulty.SpeedStep
		cfg.Scoring.MaxCollisions = 3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Schedule derives the time-dependent parameters from a config.
type Schedule struct {
	cfg TrafficConfig
}

// NewSchedule creates a schedule for the given config.
func NewSchedule(cfg TrafficConfig) Schedule {
	return Schedule{cfg: cfg}
}

// SpawnDelay returns the car spawn interval at a level. It shrinks by
// delay_per_level_ms per level and never drops below min_delay_ms.
func (s Schedule) SpawnDelay(level int) time.Duration {
	ms := s.cfg.Spawn.BaseDelayMs - level*s.cfg.Spawn.DelayPerLevelMs
	ms = max(ms, s.cfg.Spawn.MinDelayMs)
	return time.Duration(ms) * time.Millisecond
}

// LevelInterval returns how often the level rises.
func (s Schedule) LevelInterval() time.Duration {
	return time.Duration(s.cfg.Difficulty.IntervalMs) * time.Millisecond
}

// CarVelocity returns the downward velocity of a car spawned at a speed.
func (s Schedule) CarVelocity(speed float64) float64 {
	return s.cfg.Cars.BaseVelocity + speed*s.cfg.Cars.VelocityPerSpeed
}

// PassPoints returns the points for a car leaving the screen at a level.
func (s Schedule) PassPoints(level int) int {
	return s.cfg.Scoring.PassPoints * level
}

// HoldTicks returns how many ticks a key press is treated as held.
func (s Schedule) HoldTicks(tickRate int) int {
	if s.cfg.Input.HoldMs == 0 {
		return 1
	}
	return max(1, s.cfg.Input.HoldMs*tickRate/1000)
}
