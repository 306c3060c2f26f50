package game

import (
	"strings"
	"testing"
)

func TestOverlayLines(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig(), &recordingSurface{})
	engine.PointerMove(120, 45)
	engine.Tick()

	lines := overlayLines(engine, 59.6)
	want := []string{"FPS: 59.6", "Surface: 800x600", "Particles: 80", "Linker: brute", "Pointer: 120,45"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d overlay lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("Line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}

	engine.PointerLeave()
	if got := overlayLines(engine, 60)[4]; got != "Pointer: absent" {
		t.Errorf("Expected absent pointer, got %q", got)
	}
}

func TestOverlayFaceMetrics(t *testing.T) {
	m := overlayFace.Metrics()
	if m.HAscent <= 0 || m.HAscent+m.HDescent > 13 {
		t.Errorf("Expected 7x13 face metrics, got ascent %v descent %v", m.HAscent, m.HDescent)
	}
}
