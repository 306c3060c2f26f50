package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws into an offscreen ebiten image that persists between
// frames, the way a page canvas does. Game.Draw copies it to the screen.
type EbitenSurface struct {
	canvas     *ebiten.Image
	background color.NRGBA
}

// NewEbitenSurface creates a surface of the given size
func NewEbitenSurface(width, height int, background color.NRGBA) *EbitenSurface {
	s := &EbitenSurface{background: background}
	s.Resize(width, height)
	return s
}

// Resize reallocates the offscreen image
func (s *EbitenSurface) Resize(width, height int) {
	width, height = max(1, width), max(1, height)
	if s.canvas != nil {
		bounds := s.canvas.Bounds()
		if bounds.Dx() == width && bounds.Dy() == height {
			return
		}
		s.canvas.Deallocate()
	}
	s.canvas = ebiten.NewImage(width, height)
}

// Clear fills the image with the background color
func (s *EbitenSurface) Clear() {
	s.canvas.Clear()
	if s.background.A > 0 {
		s.canvas.Fill(s.background)
	}
}

// FillCircle draws an antialiased filled circle
func (s *EbitenSurface) FillCircle(x, y, radius float64, paint Paint) {
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(radius), paint.NRGBA(), true)
}

// StrokeLine draws an antialiased line
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	vector.StrokeLine(s.canvas, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), paint.NRGBA(), true)
}

// Image returns the offscreen image
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.canvas
}
