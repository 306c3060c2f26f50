package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DebugState holds global debug flags that persist across field resets
type DebugState struct {
	ShowOverlay bool // Show FPS, particle and link counts
}

// Global debug state instance (persists across field resets)
var globalDebugState = &DebugState{
	ShowOverlay: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

var (
	colorOverlayText = color.NRGBA{R: 180, G: 200, B: 255, A: 255}
	overlayFace      = text.NewGoXFace(basicfont.Face7x13)
)

// overlayLines formats the debug overlay
func overlayLines(engine *Engine, fps float64) []string {
	stats := engine.Stats()
	field := engine.Field()

	pointer := "absent"
	if !engine.Pointer().Enabled() {
		pointer = "disabled"
	} else if at, ok := engine.Pointer().Position(); ok {
		pointer = fmt.Sprintf("%.0f,%.0f", at.X, at.Y)
	}

	return []string{
		fmt.Sprintf("FPS: %.1f", fps),
		fmt.Sprintf("Surface: %.0fx%.0f", field.Width, field.Height),
		fmt.Sprintf("Particles: %d  Links: %d", stats.Particles, stats.Links),
		fmt.Sprintf("Linker: %s", engine.LinkerName()),
		fmt.Sprintf("Pointer: %s", pointer),
	}
}

// drawOverlay draws the debug overlay in the top-left corner
func drawOverlay(screen *ebiten.Image, engine *Engine, fps float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(colorOverlayText)
	op.LineSpacing = float64(basicfont.Face7x13.Metrics().Height.Ceil())
	text.Draw(screen, strings.Join(overlayLines(engine, fps), "\n"), overlayFace, op)
}
