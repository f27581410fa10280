//go:build !ebiten

package ui

import (
	"snek/config"
	"snek/game"
	"snek/game/types"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	targetFPS     = 60
	gameOverPause = 1500 * time.Millisecond
	windowTitle   = "Snek"
)

var keyDirections = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// Run opens the window and plays the session until game over or until the
// window is closed (Esc or the close button). Input is polled every frame
// and ticks happen on the configured interval, both on this goroutine.
func Run(sess *game.Session, cfg config.Config) error {
	width, height := cfg.WindowSize()
	rl.InitWindow(int32(width), int32(height), windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer(cfg.CellSize)
	p := &pacer{interval: cfg.TickInterval(), linger: gameOverPause, lastTick: time.Now()}

	for !rl.WindowShouldClose() {
		for _, kd := range keyDirections {
			for _, key := range kd.keys {
				if rl.IsKeyPressed(key) {
					sess.Input(kd.dir)
				}
			}
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if p.step(sess, time.Now()) {
			break
		}
		renderer.Draw(sess.Snapshot())
	}
	return nil
}

// pacer ticks the session on its interval from a frame loop. After game over
// it stops ticking and keeps the final frame up for linger while the loop
// goes on polling events.
type pacer struct {
	interval time.Duration
	linger   time.Duration
	lastTick time.Time
	overAt   time.Time
}

// step ticks sess at most once and reports whether the loop should end.
func (p *pacer) step(sess *game.Session, now time.Time) bool {
	if !p.overAt.IsZero() {
		return now.Sub(p.overAt) >= p.linger
	}
	if now.Sub(p.lastTick) >= p.interval {
		p.lastTick = now
		if sess.Tick() == game.GameOver {
			p.overAt = now
		}
	}
	return false
}
