package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"snek/audio"
	"snek/config"
	"snek/game"
	"snek/game/types"
	"snek/ui/terminal"
	"time"

	"github.com/gdamore/tcell/v2"
)

const terminalLinger = 1500 * time.Millisecond

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := checkFrontend(cfg.Frontend); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	g, err := game.NewGame(grid, game.Options{
		Start: game.DefaultStart(grid, cfg.Length),
		Seed:  seed,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var listener game.Listener
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			listener = sm
		}
	}

	sess := game.NewSession(g, listener)
	log.Printf("session %s: %dx%d grid, seed %d, %d tps, frontend %s",
		sess.UUID, cfg.Width, cfg.Height, seed, cfg.TPS, cfg.Frontend)

	if cfg.Frontend == config.FrontendTerminal {
		err = runTerminal(sess, cfg)
	} else {
		err = runWindow(sess, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	report(os.Stdout, sess.Snapshot())
	return 0
}

// checkFrontend rejects the window frontend this binary was not built with.
func checkFrontend(name string) error {
	switch name {
	case config.FrontendTerminal, config.FrontendWindow, windowFrontend:
		return nil
	}
	return fmt.Errorf("frontend %q is not built in; this binary has %s and %s (build with -tags ebiten to switch)",
		name, windowFrontend, config.FrontendTerminal)
}

func runTerminal(sess *game.Session, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := &terminal.Frontend{
		Screen:   screen,
		Interval: cfg.TickInterval(),
		Linger:   terminalLinger,
	}
	err = f.Run(ctx, sess)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// report prints the final score once the frontend has released the screen.
func report(w io.Writer, s game.Snapshot) {
	switch {
	case s.State == game.Running:
		fmt.Fprintf(w, "Quit. Score: %d\n", s.Score)
	case s.Won:
		fmt.Fprintf(w, "You win, the board is full! Score: %d\n", s.Score)
	case s.Err != nil:
		fmt.Fprintf(w, "Game over (%v). Score: %d\n", s.Err, s.Score)
	default:
		fmt.Fprintf(w, "Game over. Score: %d\n", s.Score)
	}
}
