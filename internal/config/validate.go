package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTickRate is returned by ValidateTickRate for rates below one tick
// per second.
var ErrInvalidTickRate = errors.New("tick rate must be at least 1")

// ValidateTickRate checks a simulation tick rate. Key hold times are derived
// from it, so it must be checked before anything uses it.
func ValidateTickRate(rate int) error {
	if rate < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTickRate, rate)
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c TrafficConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.SpeedX >= 0 && c.Player.SpeedY >= 0,
		"player speeds must not be negative")
	check(c.Player.BottomOffset >= 0, "player.bottom_offset must not be negative")

	check(c.Cars.Width > 0 && c.Cars.Height > 0,
		"car size must be positive, got %dx%d", c.Cars.Width, c.Cars.Height)
	check(c.Cars.Lanes >= 1, "cars.lanes must be at least 1, got %d", c.Cars.Lanes)
	check(c.Cars.BaseVelocity > 0, "cars.base_velocity must be positive")

	check(c.Spawn.MinDelayMs >= 1, "spawn.min_delay_ms must be at least 1, got %d", c.Spawn.MinDelayMs)
	check(c.Spawn.BaseDelayMs >= c.Spawn.MinDelayMs,
		"spawn.base_delay_ms (%d) must not be below spawn.min_delay_ms (%d)", c.Spawn.BaseDelayMs, c.Spawn.MinDelayMs)
	check(c.Spawn.DelayPerLevelMs >= 0, "spawn.delay_per_level_ms must not be negative")

	check(c.Difficulty.StartLevel >= 1, "difficulty.start_level must be at least 1")
	check(!c.Difficulty.Enabled || c.Difficulty.IntervalMs >= 1,
		"difficulty.interval_ms must be at least 1 when enabled")

	check(c.Scoring.PassPoints >= 0, "scoring.pass_points must not be negative")
	check(c.Scoring.CollisionPenalty >= 0, "scoring.collision_penalty must not be negative")
	check(c.Scoring.MaxCollisions >= 1, "scoring.max_collisions must be at least 1, got %d", c.Scoring.MaxCollisions)

	check(c.Input.HoldMs >= 0, "input.hold_ms must not be negative")

	return errors.Join(errs...)
}
