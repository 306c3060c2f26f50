package game

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleKappa places cubic Bézier control points for a quarter circle
const circleKappa = 0.5522847498

// ImageSurface rasterizes into an in-memory image, for headless rendering
type ImageSurface struct {
	img        *image.NRGBA
	raster     *vector.Rasterizer
	background *image.Uniform
}

// NewImageSurface creates an image surface of the given size
func NewImageSurface(width, height int, background color.NRGBA) *ImageSurface {
	s := &ImageSurface{background: image.NewUniform(background)}
	s.Resize(width, height)
	return s
}

// Resize replaces the backing image
func (s *ImageSurface) Resize(width, height int) {
	width, height = max(1, width), max(1, height)
	s.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	s.raster = vector.NewRasterizer(width, height)
}

// Clear paints the background over the whole image
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), s.background, image.Point{}, draw.Src)
}

// FillCircle rasterizes a disc as four cubic arcs
func (s *ImageSurface) FillCircle(x, y, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	cx, cy, r := float32(x), float32(y), float32(radius)
	k := float32(circleKappa) * r

	s.raster.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.raster.MoveTo(cx+r, cy)
	s.raster.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	s.raster.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	s.raster.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	s.raster.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	s.raster.ClosePath()
	s.fill(paint)
}

// StrokeLine rasterizes the line as a thin quad
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || width <= 0 {
		return
	}
	// half-width normal to the segment
	nx := -(y1 - y0) / length * width / 2
	ny := (x1 - x0) / length * width / 2

	s.raster.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.raster.MoveTo(float32(x0+nx), float32(y0+ny))
	s.raster.LineTo(float32(x1+nx), float32(y1+ny))
	s.raster.LineTo(float32(x1-nx), float32(y1-ny))
	s.raster.LineTo(float32(x0-nx), float32(y0-ny))
	s.raster.ClosePath()
	s.fill(paint)
}

func (s *ImageSurface) fill(paint Paint) {
	s.raster.DrawOp = draw.Over
	s.raster.Draw(s.img, s.img.Bounds(), image.NewUniform(paint.NRGBA()), image.Point{})
}

// Image returns the backing image
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}
