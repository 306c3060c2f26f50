package game

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Paint is an RGB color with a fractional opacity, like a CSS rgba() value
type Paint struct {
	R, G, B uint8
	A       float64 // opacity in [0, 1]
}

// PaintOf combines the RGB of c with the given opacity
func PaintOf(c color.NRGBA, alpha float64) Paint {
	return Paint{R: c.R, G: c.G, B: c.B, A: alpha}
}

// NRGBA converts the paint to a non-premultiplied color, rounding the alpha
func (p Paint) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, p.A))
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(a * 255))}
}

// CSS formats the paint as a CSS rgba() color string
func (p Paint) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", p.R, p.G, p.B, strconv.FormatFloat(p.A, 'f', -1, 64))
}

// Surface is a 2D drawing target with mutable pixel dimensions.
// Implementations only draw; they never report back to the engine.
type Surface interface {
	// Clear erases the whole surface
	Clear()

	// FillCircle draws a filled disc centred at (x, y)
	FillCircle(x, y, radius float64, paint Paint)

	// StrokeLine draws a line segment from (x0, y0) to (x1, y1)
	StrokeLine(x0, y0, x1, y1, width float64, paint Paint)
}

// Resizable is implemented by surfaces that own their backing store and
// must reallocate it when the field is resized
type Resizable interface {
	Resize(width, height int)
}
