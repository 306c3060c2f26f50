package game

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent is the pointer state observed for one frame
type PointerEvent struct {
	X, Y   float64
	Inside bool // false means the pointer left the surface
}

// PollPointer reads the ebiten cursor; an unfocused window or a cursor
// outside the surface counts as the pointer having left
func PollPointer(width, height int) PointerEvent {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() &&
		x >= 0 && x < width &&
		y >= 0 && y < height

	return PointerEvent{X: float64(x), Y: float64(y), Inside: inside}
}

// KeyInput holds the frontend key actions for one frame
type KeyInput struct {
	ToggleDebug bool // F1
	Reseed      bool // R: regenerate the field at the current size
	Quit        bool // Escape
}

// PollKeys reads key presses that happened this frame
func PollKeys() KeyInput {
	return KeyInput{
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		Reseed:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// DetectPrecisePointer reports whether this platform has mouse-style input.
// It is evaluated once at startup; touch-only platforms never get repulsion.
func DetectPrecisePointer() bool {
	switch runtime.GOOS {
	case "android", "ios":
		return false
	default:
		return true
	}
}
