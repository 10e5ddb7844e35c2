package config

import (
	_ "embed"
)

//go:embed defaults/traffic.yaml
var defaultTrafficYAML []byte

// DefaultTrafficConfig returns the built-in configuration.
// It mirrors defaults/traffic.yaml and is used if the embedded file
// cannot be parsed.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		Player: PlayerConfig{
			Width:        3,
			Height:       3,
			SpeedX:       30,
			SpeedY:       12,
			BottomOffset: 4,
		},
		Cars: CarsConfig{
			Width:            3,
			Height:           3,
			Lanes:            5,
			BaseVelocity:     3.5,
			VelocityPerSpeed: 0.5,
		},
		Spawn: SpawnConfig{
			BaseDelayMs:     2000,
			DelayPerLevelMs: 100,
			MinDelayMs:      400,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			IntervalMs: 30000,
			StartLevel: 1,
			StartSpeed: 3,
			SpeedStep:  0.5,
		},
		Scoring: ScoringConfig{
			PassPoints:       10,
			CollisionPenalty: 50,
			MaxCollisions:    5,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTrafficYAML
}
