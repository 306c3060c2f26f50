package game

import (
	"fmt"
)

// LinkVisitor receives one unordered pair (i < j) closer than the threshold
type LinkVisitor func(i, j int, distance float64)

// Linker enumerates particle pairs closer than a distance threshold.
// Every strategy must yield the same pair set; only the cost differs.
type Linker interface {
	// Links calls visit once per pair (i, j), i < j, with distance < threshold
	Links(field *Field, visit LinkVisitor)

	// Name returns the strategy name as accepted by NewLinker
	Name() string
}

// NewLinker creates the named linker strategy
func NewLinker(name string, threshold float64) (Linker, error) {
	switch name {
	case LinkerBruteForce, "":
		return &BruteForceLinker{Threshold: threshold}, nil
	case LinkerGrid:
		return NewGridLinker(threshold), nil
	default:
		return nil, fmt.Errorf("%w: unknown linker %q", ErrInvalidConfig, name)
	}
}

// LinkOpacity returns the line opacity for a link of the given length:
// maxAlpha for coincident particles falling to 0 at the threshold
func LinkOpacity(distance, threshold, maxAlpha float64) float64 {
	return maxAlpha * (1 - distance/threshold)
}

// BruteForceLinker checks every pair, O(N^2)
type BruteForceLinker struct {
	Threshold float64
}

// Links checks all N*(N-1)/2 pairs
func (b *BruteForceLinker) Links(field *Field, visit LinkVisitor) {
	particles := field.Particles
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			distance := particles[i].DistanceTo(&particles[j])
			if distance < b.Threshold {
				visit(i, j, distance)
			}
		}
	}
}

// Name returns LinkerBruteForce
func (b *BruteForceLinker) Name() string {
	return LinkerBruteForce
}
