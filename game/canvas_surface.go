package game

import (
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
)

// CanvasSurface draws through an HTML5-style canvas context
type CanvasSurface struct {
	cv         *canvas.Canvas
	background color.NRGBA
}

// NewCanvasSurface wraps a canvas; the canvas tracks its own window size
func NewCanvasSurface(cv *canvas.Canvas, background color.NRGBA) *CanvasSurface {
	return &CanvasSurface{
		cv:         cv,
		background: background,
	}
}

// Clear clears the canvas and fills the background
func (s *CanvasSurface) Clear() {
	w, h := float64(s.cv.Width()), float64(s.cv.Height())
	s.cv.ClearRect(0, 0, w, h)
	if s.background.A > 0 {
		s.cv.SetFillStyle(s.background)
		s.cv.FillRect(0, 0, w, h)
	}
}

// FillCircle fills an arc path
func (s *CanvasSurface) FillCircle(x, y, radius float64, paint Paint) {
	s.cv.SetFillStyle(paint.NRGBA())
	s.cv.BeginPath()
	s.cv.Arc(x, y, radius, 0, math.Pi*2, false)
	s.cv.Fill()
}

// StrokeLine strokes a two-point path
func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	s.cv.SetStrokeStyle(paint.NRGBA())
	s.cv.SetLineWidth(width)
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.Stroke()
}
