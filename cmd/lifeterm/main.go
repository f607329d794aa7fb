package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/config"
	"lifegrid/internal/sim"
	"lifegrid/internal/term"
)

func main() {
	var dump int
	flag.IntVar(&dump, "dump", -1, "print this many generations as text and exit instead of opening the screen")

	cfg := config.NewConfig()
	cfg.Rows, cfg.Cols = 40, 60
	cfg.Interval = 100 * time.Millisecond
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := cfg.NewSession()
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	if dump >= 0 {
		if err := term.Dump(os.Stdout, session, dump); err != nil {
			log.Fatalf("dump: %v", err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := sim.NewLoop(session, cfg.Interval)
	if err := term.New(screen, loop, cfg.ManualStep).Run(ctx); err != nil {
		screen.Fini()
		log.Fatalf("run: %v", err)
	}
}
