package traffic

import (
	"math/rand"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Car is a traffic car falling down its lane.
type Car struct {
	ID   uint64
	Lane int
	Body core.Box
}

// CarManager owns the active cars and the lane layout.
type CarManager struct {
	cars   []Car
	rng    *rand.Rand
	lanes  int
	fieldW float64
	carW   float64
	carH   float64
	nextID uint64
}

// NewCarManager creates an empty manager for a playfield of the given width.
func NewCarManager(seed int64, lanes, fieldW, carW, carH int) *CarManager {
	cm := &CarManager{
		cars:  make([]Car, 0, 16),
		lanes: max(1, lanes),
		carW:  float64(carW),
		carH:  float64(carH),
	}
	cm.SetFieldWidth(fieldW)
	cm.Reset(seed)
	return cm
}

// Reset removes all cars and reseeds the lane RNG.
func (cm *CarManager) Reset(seed int64) {
	cm.cars = cm.cars[:0]
	cm.rng = rand.New(rand.NewSource(seed))
	cm.nextID = 0
}

// SetFieldWidth updates the playfield width. Lanes are recomputed; cars
// already on the road keep their columns.
func (cm *CarManager) SetFieldWidth(w int) {
	cm.fieldW = float64(max(0, w))
}

// Lanes returns the number of lanes.
func (cm *CarManager) Lanes() int {
	return cm.lanes
}

// LaneCenter returns the x-coordinate of the center of lane i.
func (cm *CarManager) LaneCenter(i int) float64 {
	return (float64(i) + 0.5) * cm.fieldW / float64(cm.lanes)
}

// LaneX returns the left edge a car takes in lane i.
func (cm *CarManager) LaneX(i int) float64 {
	return cm.LaneCenter(i) - cm.carW/2
}

// Spawn adds a car in a random lane, just above the playfield, moving down
// at the given velocity.
func (cm *CarManager) Spawn(velocity float64) Car {
	lane := cm.rng.Intn(cm.lanes)
	body := core.NewBox(cm.LaneX(lane), -cm.carH, cm.carW, cm.carH)
	body.SetVelocity(0, velocity)

	cm.nextID++
	car := Car{ID: cm.nextID, Lane: lane, Body: body}
	cm.cars = append(cm.cars, car)
	return car
}

// Move advances every car by dt seconds.
func (cm *CarManager) Move(dt float64) {
	for i := range cm.cars {
		cm.cars[i].Body.Integrate(dt)
	}
}

// RemovePassed removes and returns the cars that have left the bottom of a
// playfield of height fieldH.
func (cm *CarManager) RemovePassed(fieldH int) []Car {
	var passed []Car
	kept := cm.cars[:0]
	for _, c := range cm.cars {
		if c.Body.Y >= float64(fieldH) {
			passed = append(passed, c)
			continue
		}
		kept = append(kept, c)
	}
	cm.cars = kept
	return passed
}

// Hit removes and returns the first car overlapping the given body.
func (cm *CarManager) Hit(body core.Box) (Car, bool) {
	for i, c := range cm.cars {
		if c.Body.Overlaps(body) {
			cm.cars = append(cm.cars[:i], cm.cars[i+1:]...)
			return c, true
		}
	}
	return Car{}, false
}

// Cars returns the active cars. The slice must not be modified.
func (cm *CarManager) Cars() []Car {
	return cm.cars
}

// Len returns the number of active cars.
func (cm *CarManager) Len() int {
	return len(cm.cars)
}
