package game

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// PointerTracker records the last known pointer position.
// A disabled tracker (no precise pointer on this device) ignores every move,
// so the pointer always reads as absent.
type PointerTracker struct {
	pos     r2.Vec
	present bool
	enabled bool
	radius  float64 // influence radius
}

// NewPointerTracker creates a tracker; enabled is fixed for its lifetime
func NewPointerTracker(radius float64, enabled bool) *PointerTracker {
	return &PointerTracker{
		radius:  radius,
		enabled: enabled,
	}
}

// Move records a pointer position
func (t *PointerTracker) Move(x, y float64) {
	if !t.enabled {
		return
	}
	t.pos = r2.Vec{X: x, Y: y}
	t.present = true
}

// Leave marks the pointer as absent
func (t *PointerTracker) Leave() {
	t.present = false
}

// Position returns the pointer position and whether one is present
func (t *PointerTracker) Position() (r2.Vec, bool) {
	return t.pos, t.present
}

// Radius returns the influence radius
func (t *PointerTracker) Radius() float64 {
	return t.radius
}

// Enabled reports whether the device has a precise pointer
func (t *PointerTracker) Enabled() bool {
	return t.enabled
}

// ApplyRepulsion pushes particles inside the influence radius directly away
// from the pointer. The push falls off linearly from strength at the pointer
// to zero at the radius. Only positions change; velocities are untouched.
func ApplyRepulsion(field *Field, pointer *PointerTracker, strength float64) {
	at, ok := pointer.Position()
	if !ok || !pointer.Enabled() {
		return
	}

	radius := pointer.Radius()
	for i := range field.Particles {
		p := &field.Particles[i]
		offset := r2.Sub(at, p.Pos)
		distance := r2.Norm(offset)

		// distance 0 has no direction to push along
		if distance == 0 || distance >= radius {
			continue
		}

		force := (radius - distance) / radius
		push := r2.Scale(force*strength/distance, offset)
		p.Pos = r2.Sub(p.Pos, push)
	}
}
