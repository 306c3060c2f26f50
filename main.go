package main

import (
	"flag"
	"log"

	"constellation/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	config := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &config)
	profile := flag.Bool("profile", false, "capture a CPU profile when the frame rate drops")
	profilesDir := flag.String("profiles-dir", "profiles", "directory for captured profiles")
	debug := flag.Bool("debug", false, "start with the debug overlay shown (toggle with F1)")
	flag.Parse()
	game.ApplyEnv(flag.CommandLine, &config)

	// Pointer capability is decided once for the whole session
	config.PrecisePointer = game.DetectPrecisePointer()
	game.GetDebugState().ShowOverlay = *debug

	var profiler *game.Profiler
	if *profile {
		p, err := game.NewProfiler(*profilesDir)
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
		profiler = p
	}

	g, err := game.NewGame(config, profiler)
	if err != nil {
		log.Fatalf("Failed to create particle field: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Constellation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting field: %d particles, linker=%s, pointer=%v",
		config.ParticleCount, g.Engine().LinkerName(), config.PrecisePointer)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
