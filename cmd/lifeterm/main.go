package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"lifepaint/internal/app"
	"lifepaint/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Life.Width = 60
	cfg.Life.Height = 30
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	// The screen owns the terminal until Fini; keep log output out of it.
	logger := log.New(os.Stderr, "lifeterm: ", log.LstdFlags)
	host, err := term.New(screen, cfg, log.New(io.Discard, "", 0))
	if err != nil {
		screen.Fini()
		logger.Fatalf("start session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := host.Run(ctx)
	screen.Fini()
	if runErr != nil {
		logger.Fatal(runErr)
	}
}
