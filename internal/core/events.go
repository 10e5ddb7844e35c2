package core

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCarSpawned EventKind = iota + 1
	EventCarPassed
	EventCollision
	EventLevelUp
	EventPaused
	EventResumed
	EventGameOver
	EventRestartRequested
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventCarSpawned:
		return "car_spawned"
	case EventCarPassed:
		return "car_passed"
	case EventCollision:
		return "collision"
	case EventLevelUp:
		return "level_up"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventRestartRequested:
		return "restart_requested"
	default:
		return "unknown"
	}
}

// Event is emitted by the game and consumed by the platform (logging).
// Score and Level are the values right after the event was applied.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Score int
	Level int
	Lane  int // Lane of the car involved, -1 when not applicable
}
