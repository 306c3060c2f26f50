//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"constellation/game"
)

const canvasID = "particles-js"

var (
	win = js.Global()
	doc = js.Global().Get("document")
)

// rafSource requests frames with window.requestAnimationFrame
type rafSource struct {
	callback js.Func
	pending  func()
	handle   js.Value
}

func newRAFSource() *rafSource {
	r := &rafSource{}
	r.callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := r.pending
		r.pending = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return r
}

func (r *rafSource) Request(fn func()) {
	r.pending = fn
	r.handle = win.Call("requestAnimationFrame", r.callback)
}

func (r *rafSource) Cancel() {
	r.pending = nil
	if r.handle.Truthy() {
		win.Call("cancelAnimationFrame", r.handle)
	}
}

// isTouchDevice checks a window object for touch input.
// Touch point counts are read only when the browser defines them.
func isTouchDevice(window js.Value) bool {
	if window.Get("ontouchstart").Type() != js.TypeUndefined {
		return true
	}
	nav := window.Get("navigator")
	if nav.Type() != js.TypeObject {
		return false
	}
	return touchPoints(nav, "maxTouchPoints") > 0 || touchPoints(nav, "msMaxTouchPoints") > 0
}

func touchPoints(nav js.Value, property string) int {
	v := nav.Get(property)
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Int()
}

func main() {
	canvas := doc.Call("getElementById", canvasID)
	if !canvas.Truthy() {
		log.Printf("no #%s canvas on this page, particle field not started", canvasID)
		return
	}

	config := game.DefaultConfig()
	config.Background = transparent
	config.PrecisePointer = !isTouchDevice(win)

	surface, err := newJSSurface(canvas)
	if err != nil {
		log.Printf("particle field not started: %v", err)
		return
	}
	engine, err := game.NewEngine(config, surface,
		win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
	if err != nil {
		log.Printf("particle field not started: %v", err)
		return
	}

	win.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		engine.PointerMove(e.Get("x").Float(), e.Get("y").Float())
		return nil
	}))
	win.Call("addEventListener", "mouseout", js.FuncOf(func(this js.Value, args []js.Value) any {
		engine.PointerLeave()
		return nil
	}))
	win.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		engine.Resize(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
		return nil
	}))

	scheduler := game.NewScheduler(newRAFSource(), engine.Tick)
	if err := scheduler.Start(); err != nil {
		log.Printf("particle field not started: %v", err)
		return
	}

	// keep the Go runtime alive for the page's lifetime
	select {}
}
