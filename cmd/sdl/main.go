package main

import (
	"flag"
	"log"

	"constellation/game"

	"github.com/tfriedel6/canvas/sdlcanvas"
)

func main() {
	config := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &config)
	flag.Parse()
	game.ApplyEnv(flag.CommandLine, &config)

	config.PrecisePointer = game.DetectPrecisePointer()

	win, cv, err := sdlcanvas.CreateWindow(config.ScreenWidth, config.ScreenHeight, "Constellation")
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	surface := game.NewCanvasSurface(cv, config.Background)
	engine, err := game.NewEngine(config, surface, float64(cv.Width()), float64(cv.Height()))
	if err != nil {
		log.Fatalf("Failed to create particle field: %v", err)
	}

	// SDL delivers events on the same thread that runs MainLoop
	win.MouseMove = func(x, y int) {
		if x < 0 || y < 0 || x >= cv.Width() || y >= cv.Height() {
			engine.PointerLeave()
			return
		}
		engine.PointerMove(float64(x), float64(y))
	}
	win.SizeChange = func(w, h int) {
		engine.Resize(float64(w), float64(h))
	}

	refresh := game.NewRefreshSource()
	scheduler := game.NewScheduler(refresh, engine.Tick)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	log.Printf("Starting field: %d particles, linker=%s", config.ParticleCount, engine.LinkerName())

	win.MainLoop(func() {
		if !refresh.Fire() {
			win.Close()
		}
	})
}
