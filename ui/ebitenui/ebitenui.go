//go:build ebiten

// Package ebitenui plays the game in an ebiten window.
package ebitenui

import (
	"fmt"
	"image/color"
	"snek/config"
	"snek/game"
	"snek/game/types"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gameOverPause = 1500 * time.Millisecond

var (
	background = color.RGBA{0, 0, 255, 255}
	snakeColor = color.RGBA{255, 0, 0, 255}
	headColor  = color.RGBA{160, 0, 0, 255}
	foodColor  = color.RGBA{0, 200, 0, 255}
)

var keyDirections = []struct {
	keys []ebiten.Key
	dir  types.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, types.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, types.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, types.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, types.Right},
}

// window adapts a session to ebiten.Game. Ebiten calls Update at its own
// rate; game ticks are paced by the configured interval inside it.
type window struct {
	sess     *game.Session
	cellSize float32
	width    int
	height   int
	interval time.Duration
	lastTick time.Time
	overAt   time.Time
}

func Run(sess *game.Session, cfg config.Config) error {
	width, height := cfg.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Snek")

	w := &window{
		sess:     sess,
		cellSize: float32(cfg.CellSize),
		width:    width,
		height:   height,
		interval: cfg.TickInterval(),
		lastTick: time.Now(),
	}
	return ebiten.RunGame(w)
}

func (w *window) Update() error {
	if !w.overAt.IsZero() {
		if time.Since(w.overAt) >= gameOverPause {
			return ebiten.Termination
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, kd := range keyDirections {
		for _, key := range kd.keys {
			if inpututil.IsKeyJustPressed(key) {
				w.sess.Input(kd.dir)
			}
		}
	}

	if time.Since(w.lastTick) >= w.interval {
		w.lastTick = time.Now()
		if w.sess.Tick() == game.GameOver {
			w.overAt = time.Now()
		}
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	s := w.sess.Snapshot()
	screen.Fill(background)

	w.fillCell(screen, s.Food, foodColor)
	for i, p := range s.Body {
		clr := snakeColor
		if i == 0 {
			clr = headColor
		}
		w.fillCell(screen, p, clr)
	}

	status := fmt.Sprintf("Score: %d  Steps: %d", s.Score, s.Steps)
	if s.State == game.Terminated {
		switch {
		case s.Won:
			status += "\nYou Win! The board is full."
		case s.Err != nil:
			status += fmt.Sprintf("\nGame Over! (%v)", s.Err)
		default:
			status += "\nGame Over!"
		}
	}
	ebitenutil.DebugPrint(screen, status)
}

func (w *window) fillCell(screen *ebiten.Image, p types.Point, clr color.Color) {
	vector.FillRect(screen, float32(p.X)*w.cellSize, float32(p.Y)*w.cellSize, w.cellSize, w.cellSize, clr, false)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
