package game

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func cloneField(f *Field) *Field {
	clone := *f
	clone.Particles = append([]Particle(nil), f.Particles...)
	return &clone
}

func TestPointerTrackerMoveAndLeave(t *testing.T) {
	tracker := NewPointerTracker(150, true)

	if _, ok := tracker.Position(); ok {
		t.Fatal("Expected new tracker to have no pointer")
	}

	tracker.Move(10, 20)
	at, ok := tracker.Position()
	if !ok || at.X != 10 || at.Y != 20 {
		t.Errorf("Expected pointer at (10,20), got %v present=%v", at, ok)
	}

	tracker.Leave()
	if _, ok := tracker.Position(); ok {
		t.Error("Expected pointer absent after Leave")
	}
}

func TestDisabledPointerTrackerIgnoresMoves(t *testing.T) {
	tracker := NewPointerTracker(150, false)
	tracker.Move(10, 20)

	if _, ok := tracker.Position(); ok {
		t.Error("Expected disabled tracker to stay absent")
	}
}

func TestApplyRepulsionAbsentPointerMatchesPhysicsOnly(t *testing.T) {
	field := NewField(DefaultConfig(), 800, 600, NewSeededRandomSource(7))
	reference := cloneField(field)
	tracker := NewPointerTracker(150, true)

	for tick := 0; tick < 50; tick++ {
		Advance(field, false)
		ApplyRepulsion(field, tracker, 2)
		Advance(reference, false)
	}

	for i := range field.Particles {
		if field.Particles[i] != reference.Particles[i] {
			t.Fatalf("Particle %d diverged with absent pointer: %v vs %v", i, field.Particles[i], reference.Particles[i])
		}
	}
}

func TestApplyRepulsionDisabledTrackerIsNoop(t *testing.T) {
	field := singleParticleField(110, 100, 0, 0)
	tracker := NewPointerTracker(150, false)
	tracker.Move(100, 100)

	ApplyRepulsion(field, tracker, 2)

	if field.Particles[0].Pos != (r2.Vec{X: 110, Y: 100}) {
		t.Errorf("Expected no displacement on a touch-only device, got %v", field.Particles[0].Pos)
	}
}

func TestApplyRepulsionPushesAwayWithLinearFalloff(t *testing.T) {
	field := &Field{
		Particles: []Particle{
			{Pos: r2.Vec{X: 160, Y: 100}, Vel: r2.Vec{X: 0.1, Y: -0.1}},
			{Pos: r2.Vec{X: 100, Y: 70}},
		},
		Width:  800,
		Height: 600,
	}
	tracker := NewPointerTracker(150, true)
	tracker.Move(100, 100)

	ApplyRepulsion(field, tracker, 2)

	// d = 60: force = 0.6, push = 1.2 along +x
	p := field.Particles[0]
	if math.Abs(p.Pos.X-161.2) > 1e-9 || p.Pos.Y != 100 {
		t.Errorf("Expected particle pushed to (161.2,100), got %v", p.Pos)
	}
	if p.Vel != (r2.Vec{X: 0.1, Y: -0.1}) {
		t.Errorf("Expected velocity untouched, got %v", p.Vel)
	}

	// d = 30: force = 0.8, push = 1.6 along -y
	q := field.Particles[1]
	if q.Pos.X != 100 || math.Abs(q.Pos.Y-68.4) > 1e-9 {
		t.Errorf("Expected particle pushed to (100,68.4), got %v", q.Pos)
	}
}

func TestApplyRepulsionIgnoresParticlesAtOrBeyondRadius(t *testing.T) {
	field := &Field{
		Particles: []Particle{
			{Pos: r2.Vec{X: 250, Y: 100}},
			{Pos: r2.Vec{X: 100, Y: 400}},
		},
		Width:  800,
		Height: 600,
	}
	reference := cloneField(field)
	tracker := NewPointerTracker(150, true)
	tracker.Move(100, 100)

	ApplyRepulsion(field, tracker, 2)

	for i := range field.Particles {
		if field.Particles[i].Pos != reference.Particles[i].Pos {
			t.Errorf("Particle %d moved from %v to %v outside the radius", i, reference.Particles[i].Pos, field.Particles[i].Pos)
		}
	}
}

func TestApplyRepulsionAtZeroDistanceStaysFinite(t *testing.T) {
	field := singleParticleField(100, 100, 0.2, 0.2)
	tracker := NewPointerTracker(150, true)
	tracker.Move(100, 100)

	for tick := 0; tick < 10; tick++ {
		ApplyRepulsion(field, tracker, 2)
	}

	p := field.Particles[0]
	if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) || math.IsInf(p.Pos.X, 0) || math.IsInf(p.Pos.Y, 0) {
		t.Fatalf("Expected finite position, got %v", p.Pos)
	}
	if p.Pos != (r2.Vec{X: 100, Y: 100}) {
		t.Errorf("Expected zero displacement at the pointer, got %v", p.Pos)
	}
}
