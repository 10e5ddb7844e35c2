// Package config provides YAML-based configuration for the traffic game:
// embedded defaults, a user override search path, validation, and
// difficulty presets.
package config

// TrafficConfig contains all tunables of the game.
// Sizes are in screen cells, speeds in cells per second, delays in
// milliseconds.
type TrafficConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Cars       CarsConfig       `yaml:"cars"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
}

// PlayerConfig defines the player's car.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"`
	BottomOffset int     `yaml:"bottom_offset"` // Rows between player and playfield bottom at start
}

// CarsConfig defines the traffic cars.
type CarsConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Lanes            int     `yaml:"lanes"`
	BaseVelocity     float64 `yaml:"base_velocity"`
	VelocityPerSpeed float64 `yaml:"velocity_per_speed"`
}

// SpawnConfig defines the car spawn cadence.
type SpawnConfig struct {
	BaseDelayMs     int `yaml:"base_delay_ms"`
	DelayPerLevelMs int `yaml:"delay_per_level_ms"`
	MinDelayMs      int `yaml:"min_delay_ms"`
}

// DifficultyConfig defines the escalation timer.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	IntervalMs int     `yaml:"interval_ms"`
	StartLevel int     `yaml:"start_level"`
	StartSpeed float64 `yaml:"start_speed"`
	SpeedStep  float64 `yaml:"speed_step"`
}

// ScoringConfig defines points and the strike limit.
type ScoringConfig struct {
	PassPoints       int `yaml:"pass_points"`       // Multiplied by the level
	CollisionPenalty int `yaml:"collision_penalty"` // Score never drops below zero
	MaxCollisions    int `yaml:"max_collisions"`
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Description returns a one-line summary of a preset.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "slower traffic, 7 strikes"
	case DifficultyNormal:
		return "the classic rules"
	case DifficultyHard:
		return "starts at level 3, 3 strikes"
	case DifficultyFixed:
		return "no escalation"
	default:
		return ""
	}
}
