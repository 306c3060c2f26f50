package game

import (
	"fmt"
	"image/color"
	"math"
)

// Linker strategy names accepted by Config.Linker
const (
	LinkerBruteForce = "brute"
	LinkerGrid       = "grid"
)

// Config holds particle field configuration
type Config struct {
	// ParticleCount is the number of particles in every (re)initialized field
	ParticleCount int

	// MaxSpeed bounds each velocity component at creation: [-MaxSpeed, MaxSpeed)
	MaxSpeed float64

	// MinRadius and MaxRadius bound the particle disc radius: [MinRadius, MaxRadius)
	MinRadius float64
	MaxRadius float64

	// InfluenceRadius is the distance within which the pointer displaces particles
	InfluenceRadius float64

	// RepulsionStrength scales the positional nudge at the pointer
	RepulsionStrength float64

	// LinkDistance is the distance below which two particles are joined by a line
	LinkDistance float64

	// LinkAlpha is the line opacity for two coincident particles
	LinkAlpha float64

	// LineWidth is the stroke width of connecting lines in pixels
	LineWidth float64

	// ParticleAlpha is the fill opacity of particle discs
	ParticleAlpha float64

	// Color is the RGB used for both discs and lines
	Color color.NRGBA

	// Background is painted by Clear; zero means transparent
	Background color.NRGBA

	// ClampToBounds pulls a bouncing particle back inside the surface
	ClampToBounds bool

	// Linker selects the pair enumeration strategy (LinkerBruteForce or LinkerGrid)
	Linker string

	// MinSurfaceSize is the smallest accepted surface width/height
	MinSurfaceSize float64

	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// PrecisePointer enables pointer repulsion; decided once at startup
	PrecisePointer bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ParticleCount:     80,
		MaxSpeed:          0.25,
		MinRadius:         1.0,
		MaxRadius:         4.0,
		InfluenceRadius:   150.0,
		RepulsionStrength: 2.0,
		LinkDistance:      150.0,
		LinkAlpha:         0.2,
		LineWidth:         1.0,
		ParticleAlpha:     0.5,
		Color:             color.NRGBA{R: 74, G: 108, B: 247, A: 255},
		Background:        color.NRGBA{R: 3, G: 5, B: 16, A: 255},
		ClampToBounds:     false,
		Linker:            LinkerBruteForce,
		MinSurfaceSize:    1.0,
		ScreenWidth:       1024,
		ScreenHeight:      768,
		PrecisePointer:    true,
	}
}

// Validate reports the first invalid field of the configuration
func (c Config) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"max speed", c.MaxSpeed},
		{"min radius", c.MinRadius},
		{"max radius", c.MaxRadius},
		{"influence radius", c.InfluenceRadius},
		{"repulsion strength", c.RepulsionStrength},
		{"link distance", c.LinkDistance},
		{"link alpha", c.LinkAlpha},
		{"line width", c.LineWidth},
		{"particle alpha", c.ParticleAlpha},
		{"min surface size", c.MinSurfaceSize},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, v.name, v.value)
		}
	}

	switch {
	case c.ParticleCount <= 0:
		return fmt.Errorf("%w: particle count %d", ErrInvalidConfig, c.ParticleCount)
	case c.MaxSpeed < 0:
		return fmt.Errorf("%w: max speed %v", ErrInvalidConfig, c.MaxSpeed)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("%w: radius range [%v, %v)", ErrInvalidConfig, c.MinRadius, c.MaxRadius)
	case c.InfluenceRadius <= 0:
		return fmt.Errorf("%w: influence radius %v", ErrInvalidConfig, c.InfluenceRadius)
	case c.LinkDistance <= 0:
		return fmt.Errorf("%w: link distance %v", ErrInvalidConfig, c.LinkDistance)
	case c.MinSurfaceSize <= 0:
		return fmt.Errorf("%w: min surface size %v", ErrInvalidConfig, c.MinSurfaceSize)
	}
	if _, err := NewLinker(c.Linker, c.LinkDistance); err != nil {
		return err
	}
	return nil
}

// ParticlePaint returns the fill paint for particle discs
func (c Config) ParticlePaint() Paint {
	return PaintOf(c.Color, c.ParticleAlpha)
}

// LinkPaint returns the stroke paint for a link of the given length
func (c Config) LinkPaint(distance float64) Paint {
	return PaintOf(c.Color, LinkOpacity(distance, c.LinkDistance, c.LinkAlpha))
}
