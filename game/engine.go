package game

import (
	"fmt"
	"log"
	"reflect"
)

// Engine owns the drawing surface, the particle field and the pointer state.
// All methods must be called from the single thread that drives ticks.
type Engine struct {
	config   Config
	surface  Surface
	field    *Field
	pointer  *PointerTracker
	renderer *Renderer
	rng      RandomSource
	ticks    uint64
}

// NewEngine creates an engine with an unseeded random source
func NewEngine(config Config, surface Surface, width, height float64) (*Engine, error) {
	return NewEngineWithSource(config, surface, width, height, DefaultRandomSource())
}

// NewEngineWithSource creates an engine whose field is sampled from rng.
// It refuses to start without a surface, including a nil pointer held in the interface.
func NewEngineWithSource(config Config, surface Surface, width, height float64, rng RandomSource) (*Engine, error) {
	if isNilSurface(surface) {
		return nil, ErrNilSurface
	}
	if rng == nil {
		rng = DefaultRandomSource()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	linker, err := NewLinker(config.Linker, config.LinkDistance)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	e := &Engine{
		config:   config,
		surface:  surface,
		pointer:  NewPointerTracker(config.InfluenceRadius, config.PrecisePointer),
		renderer: NewRenderer(config, linker),
		rng:      rng,
	}
	e.Resize(width, height)

	return e, nil
}

// Tick runs one frame: physics, pointer repulsion, then render
func (e *Engine) Tick() {
	e.Step()
	e.renderer.Draw(e.field, e.surface)
}

// Step runs physics and pointer repulsion without rendering
func (e *Engine) Step() {
	Advance(e.field, e.config.ClampToBounds)
	ApplyRepulsion(e.field, e.pointer, e.config.RepulsionStrength)
	e.ticks++
}

// Resize replaces the whole field with a freshly sampled one for the new size.
// The old field is dropped in a single pointer swap.
func (e *Engine) Resize(width, height float64) {
	field := NewField(e.config, width, height, e.rng)
	if field.Width != width || field.Height != height {
		log.Printf("surface size %vx%v invalid, clamped to %vx%v", width, height, field.Width, field.Height)
	}

	if resizable, ok := e.surface.(Resizable); ok {
		resizable.Resize(int(field.Width), int(field.Height))
	}
	e.field = field
}

// PointerMove records a pointer-move event
func (e *Engine) PointerMove(x, y float64) {
	e.pointer.Move(x, y)
}

// PointerLeave records a pointer-leave event
func (e *Engine) PointerLeave() {
	e.pointer.Leave()
}

// Field returns the current particle field
func (e *Engine) Field() *Field {
	return e.field
}

// Pointer returns the pointer tracker
func (e *Engine) Pointer() *PointerTracker {
	return e.pointer
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns statistics for the last rendered frame
func (e *Engine) Stats() FrameStats {
	return e.renderer.LastFrame()
}

// Ticks returns the number of physics steps run so far
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// LinkerName returns the name of the pair strategy in use
func (e *Engine) LinkerName() string {
	return e.renderer.Linker().Name()
}

func isNilSurface(surface Surface) bool {
	if surface == nil {
		return true
	}
	v := reflect.ValueOf(surface)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
