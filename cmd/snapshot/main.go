package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"constellation/game"
)

func main() {
	config := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &config)
	ticks := flag.Int("ticks", 120, "number of ticks to run before writing the image")
	interval := flag.Duration("interval", time.Second/60, "time between ticks")
	seed := flag.Int64("seed", 0, "random seed (0 = unseeded)")
	pointerX := flag.Float64("pointer-x", -1, "pointer x position (negative = no pointer)")
	pointerY := flag.Float64("pointer-y", -1, "pointer y position")
	out := flag.String("out", "field.png", "output PNG path")
	flag.Parse()
	game.ApplyEnv(flag.CommandLine, &config)

	rng := game.DefaultRandomSource()
	if *seed != 0 {
		rng = game.NewSeededRandomSource(*seed)
	}

	surface := game.NewImageSurface(config.ScreenWidth, config.ScreenHeight, config.Background)
	engine, err := game.NewEngineWithSource(config, surface,
		float64(config.ScreenWidth), float64(config.ScreenHeight), rng)
	if err != nil {
		log.Fatalf("Failed to create particle field: %v", err)
	}
	if *pointerX >= 0 && *pointerY >= 0 {
		engine.PointerMove(*pointerX, *pointerY)
	}

	source := game.NewTickerSource(*interval)
	var scheduler *game.Scheduler
	scheduler = game.NewScheduler(source, func() {
		engine.Tick()
		if engine.Ticks() >= uint64(*ticks) {
			scheduler.Stop()
		}
	})

	start := time.Now()
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	<-source.Done()

	stats := engine.Stats()
	log.Printf("Ran %d ticks in %v: %d particles, %d links (%s)",
		scheduler.Ticks(), time.Since(start).Round(time.Millisecond), stats.Particles, stats.Links, engine.LinkerName())

	if err := writePNG(*out, surface); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	log.Printf("Snapshot saved to: %s", *out)
}

func writePNG(path string, surface *game.ImageSurface) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, surface.Image()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return file.Close()
}
