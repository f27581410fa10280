package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Frontends. FrontendWindow is whichever of raylib or ebiten the binary was
// built with; the ebiten build tag selects ebiten.
const (
	FrontendWindow   = "window"
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
	FrontendEbiten   = "ebiten"
)

// Defaults: a 512x512 window of 16px squares updated 16 times a second.
const (
	DefaultWidth    = 32
	DefaultHeight   = 32
	DefaultCellSize = 16
	DefaultTPS      = 16
	MaxTPS          = 60
)

type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Length   int
	Frontend string
	Seed     uint64 // 0 picks a time based seed
	Sound    bool
	Debug    bool
}

func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		TPS:      DefaultTPS,
		Length:   1,
		Frontend: FrontendWindow,
	}
}

// Parse reads command-line flags on top of Default and validates the result.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("snek", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels (window frontends)")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Game ticks per second")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "Initial snake length (1 or 2)")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Frontend: window, terminal, raylib or ebiten")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound effects")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS < 1 || c.TPS > MaxTPS {
		return fmt.Errorf("tps must be in 1..%d, got %d", MaxTPS, c.TPS)
	}
	if c.Length < 1 || c.Length > 2 {
		return fmt.Errorf("length must be 1 or 2, got %d", c.Length)
	}
	// The tail trails left of the head at x = width/4.
	if c.Width/4 < c.Length-1 {
		return fmt.Errorf("a snake of length %d does not fit a grid %d wide", c.Length, c.Width)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendRaylib, FrontendTerminal, FrontendEbiten:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// TickInterval is the time between two game ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// WindowSize is the pixel size of the playing field.
func (c Config) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
