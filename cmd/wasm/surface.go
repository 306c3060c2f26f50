//go:build js && wasm

package main

import (
	"fmt"
	"image/color"
	"math"
	"syscall/js"

	"constellation/game"
)

// jsSurface draws on a page canvas through its 2D rendering context
type jsSurface struct {
	canvas js.Value
	ctx    js.Value
}

// newJSSurface fails when the canvas cannot give a 2D context, which
// happens once another context type was taken from it
func newJSSurface(canvas js.Value) (*jsSurface, error) {
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: canvas has no 2d context", game.ErrNilSurface)
	}
	return &jsSurface{canvas: canvas, ctx: ctx}, nil
}

// Resize sets the canvas pixel size, which also clears it
func (s *jsSurface) Resize(width, height int) {
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}

func (s *jsSurface) Clear() {
	s.ctx.Call("clearRect", 0, 0, s.canvas.Get("width").Int(), s.canvas.Get("height").Int())
}

func (s *jsSurface) FillCircle(x, y, radius float64, paint game.Paint) {
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, radius, 0, math.Pi*2)
	s.ctx.Set("fillStyle", paint.CSS())
	s.ctx.Call("fill")
}

func (s *jsSurface) StrokeLine(x0, y0, x1, y1, width float64, paint game.Paint) {
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x0, y0)
	s.ctx.Call("lineTo", x1, y1)
	s.ctx.Set("lineWidth", width)
	s.ctx.Set("strokeStyle", paint.CSS())
	s.ctx.Call("stroke")
}

// transparent lets the page background show through the canvas
var transparent = color.NRGBA{}
