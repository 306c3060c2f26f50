package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single point of the field, drawn as a small disc
type Particle struct {
	// Position in surface coordinates
	Pos r2.Vec

	// Velocity in pixels per tick
	Vel r2.Vec

	// Disc radius in pixels
	Radius float64
}

// DistanceTo returns the Euclidean distance to another particle
func (p *Particle) DistanceTo(other *Particle) float64 {
	return r2.Norm(r2.Sub(other.Pos, p.Pos))
}

// Field owns the particle set and the surface dimensions it was sampled for
type Field struct {
	// Particles in creation order (pair enumeration uses i < j on this order)
	Particles []Particle

	// Surface dimensions the particles bounce within
	Width, Height float64
}

// NewField samples a complete field for a width x height surface.
// Dimensions below config.MinSurfaceSize, or not finite, become MinSurfaceSize.
func NewField(config Config, width, height float64, rng RandomSource) *Field {
	width, height = clampSurfaceSize(width, height, config.MinSurfaceSize)

	particles := make([]Particle, config.ParticleCount)
	for i := range particles {
		x := rng.Float64() * width
		y := rng.Float64() * height
		vx := (rng.Float64() - 0.5) * 2 * config.MaxSpeed
		vy := (rng.Float64() - 0.5) * 2 * config.MaxSpeed
		radius := config.MinRadius + rng.Float64()*(config.MaxRadius-config.MinRadius)

		particles[i] = Particle{
			Pos:    r2.Vec{X: x, Y: y},
			Vel:    r2.Vec{X: vx, Y: vy},
			Radius: radius,
		}
	}

	return &Field{
		Particles: particles,
		Width:     width,
		Height:    height,
	}
}

// Len returns the number of particles
func (f *Field) Len() int {
	return len(f.Particles)
}

// clampSurfaceSize replaces small or non-finite dimensions with minSize
func clampSurfaceSize(width, height, minSize float64) (float64, float64) {
	return clampDimension(width, minSize), clampDimension(height, minSize)
}

func clampDimension(v, minSize float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < minSize {
		return minSize
	}
	return v
}
