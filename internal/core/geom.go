// Package core provides the pure building blocks of the game: geometry,
// the character screen buffer, input frames and tick timers.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays deterministic and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a physics body: a rectangle with sub-cell position and a velocity
// in cells per second.
type Box struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64
}

// NewBox creates a box at rest.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// SetVelocity replaces both velocity components.
func (b *Box) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Integrate advances the position by velocity over dt seconds.
func (b *Box) Integrate(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// ClampTo keeps the box inside a bounds rectangle of the given size anchored
// at the origin. A box larger than the bounds is pinned to the origin.
func (b *Box) ClampTo(w, h float64) {
	b.X = ClampF(b.X, 0, math.Max(0, w-b.W))
	b.Y = ClampF(b.Y, 0, math.Max(0, h-b.H))
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes overlap. Touching edges do not count.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Rect snaps the box to the screen grid for drawing.
func (b Box) Rect() Rect {
	return NewRect(int(math.Round(b.X)), int(math.Round(b.Y)), int(b.W), int(b.H))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
