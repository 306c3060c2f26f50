package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the particle engine to ebiten's Update/Draw/Layout loop.
// Each Update fires one scheduler refresh, which ticks the engine into an
// offscreen surface; Draw only copies that surface to the screen.
type Game struct {
	engine    *Engine
	surface   *EbitenSurface
	scheduler *Scheduler
	refresh   *RefreshSource

	// Window size as last reported by Layout; applied on the next Update
	width, height  int
	pendingResize  bool
	lastUpdateTime time.Time
	fps            *FPSMeter
	profiler       *Profiler
	targetFPS      float64
	gameStartTime  time.Time
}

// NewGame creates the ebiten frontend and starts its scheduler.
// A non-nil profiler captures a profile when the frame rate drops.
func NewGame(config Config, profiler *Profiler) (*Game, error) {
	surface := NewEbitenSurface(config.ScreenWidth, config.ScreenHeight, config.Background)

	engine, err := NewEngine(config, surface, float64(config.ScreenWidth), float64(config.ScreenHeight))
	if err != nil {
		return nil, err
	}

	refresh := NewRefreshSource()
	g := &Game{
		engine:         engine,
		surface:        surface,
		refresh:        refresh,
		scheduler:      NewScheduler(refresh, engine.Tick),
		width:          config.ScreenWidth,
		height:         config.ScreenHeight,
		lastUpdateTime: time.Now(),
		fps:            NewFPSMeter(0.5, float64(ebiten.DefaultTPS)),
		profiler:       profiler,
		targetFPS:      float64(ebiten.DefaultTPS) - 5,
		gameStartTime:  time.Now(),
	}

	if err := g.scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}
	return g, nil
}

// Update applies input and resize events, then runs one tick
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	keys := PollKeys()
	if keys.Quit {
		g.scheduler.Stop()
	}
	if !g.scheduler.Running() {
		return ebiten.Termination
	}

	if keys.ToggleDebug {
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	}

	if g.pendingResize || keys.Reseed {
		g.engine.Resize(float64(g.width), float64(g.height))
		g.pendingResize = false
	}

	pointer := PollPointer(g.width, g.height)
	if pointer.Inside {
		g.engine.PointerMove(pointer.X, pointer.Y)
	} else {
		g.engine.PointerLeave()
	}

	g.refresh.Fire()

	if g.fps.Frame(deltaTime) {
		g.checkFrameRate()
	}
	return nil
}

// checkFrameRate captures a profile when the frame rate sags after startup
func (g *Game) checkFrameRate() {
	if g.profiler == nil || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}
	if g.fps.FPS() >= g.targetFPS {
		return
	}

	report := SlowFrameReport{
		FPS:    g.fps.FPS(),
		Stats:  g.engine.Stats(),
		Linker: g.engine.LinkerName(),
	}
	if err := g.profiler.CaptureSlowFrames(report); err == nil {
		log.Printf("Frame rate dropped (%s), capturing profile", report)
	}
}

// Draw copies the offscreen surface to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	if GetDebugState().ShowOverlay {
		drawOverlay(screen, g.engine, g.fps.FPS())
	}
}

// Layout tracks the window size; a change reinitializes the field on the next Update
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth, outsideHeight = max(1, outsideWidth), max(1, outsideHeight)
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.pendingResize = true
	}
	return g.width, g.height
}

// Engine returns the underlying particle engine
func (g *Game) Engine() *Engine {
	return g.engine
}
