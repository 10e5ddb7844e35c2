package core

import "time"

// Timer is a looping timer driven by simulation ticks rather than wall
// time, so pausing the simulation pauses the timer and replays stay
// deterministic.
type Timer struct {
	period  int // ticks between fires, at least 1
	elapsed int
}

// NewTimer creates a looping timer firing every delay at the given tick rate.
func NewTimer(delay time.Duration, tickRate int) *Timer {
	t := &Timer{}
	t.SetDelay(delay, tickRate)
	return t
}

// TicksFor converts a duration to a whole number of ticks (at least 1).
func TicksFor(delay time.Duration, tickRate int) int {
	if tickRate < 1 {
		tickRate = 1
	}
	ticks := int(delay * time.Duration(tickRate) / time.Second)
	return max(1, ticks)
}

// SetDelay changes the period. Progress made toward the next fire is kept,
// so a shorter delay may fire on the very next Advance.
func (t *Timer) SetDelay(delay time.Duration, tickRate int) {
	t.period = TicksFor(delay, tickRate)
}

// Period returns the current period in ticks.
func (t *Timer) Period() int {
	return t.period
}

// Advance moves the timer forward one tick and reports whether it fired.
func (t *Timer) Advance() bool {
	t.elapsed++
	if t.elapsed >= t.period {
		t.elapsed = 0
		return true
	}
	return false
}

// Remaining returns ticks left until the next fire.
func (t *Timer) Remaining() int {
	return max(0, t.period-t.elapsed)
}
