//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/ui"
)

func main() {
	cfg := config.NewConfig()
	cfg.Interval = 50 * time.Millisecond
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := cfg.NewSession()
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Interval, cfg.ManualStep)
	size := sim.Size()

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(size.Cols*cfg.Scale, size.Rows*cfg.Scale+ui.ToolbarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
