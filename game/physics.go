package game

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Advance moves every particle by its velocity and bounces it off the
// surface edges. Motion is per tick, not per second.
//
// A particle past an edge has its velocity component negated. Unless clamp
// is set the position is left where it is, so a particle that overshoots by
// more than one step stays outside (and keeps flipping) for a few ticks.
func Advance(field *Field, clamp bool) {
	for i := range field.Particles {
		p := &field.Particles[i]
		p.Pos = r2.Add(p.Pos, p.Vel)

		if p.Pos.X < 0 || p.Pos.X > field.Width {
			p.Vel.X = -p.Vel.X
			if clamp {
				p.Pos.X = clampFloat(p.Pos.X, 0, field.Width)
			}
		}
		if p.Pos.Y < 0 || p.Pos.Y > field.Height {
			p.Vel.Y = -p.Vel.Y
			if clamp {
				p.Pos.Y = clampFloat(p.Pos.Y, 0, field.Height)
			}
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
