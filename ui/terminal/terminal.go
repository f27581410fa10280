// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"snek/game"
	"snek/game/types"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so squares look square.
const cellWidth = 2

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlue)
	snakeStyle      = tcell.StyleDefault.Background(tcell.ColorRed)
	headStyle       = tcell.StyleDefault.Background(tcell.ColorMaroon)
	foodStyle       = tcell.StyleDefault.Background(tcell.ColorGreen)
	statusStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gameOverStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Fits checks the screen can hold the grid plus one status line.
func (r *Renderer) Fits(grid types.Grid) error {
	w, h := r.screen.Size()
	needW, needH := grid.Width*cellWidth, grid.Height+1
	if w < needW || h < needH {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, needW, needH)
	}
	return nil
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			r.fill(types.Point{X: x, Y: y}, backgroundStyle)
		}
	}
	r.fill(s.Food, foodStyle)
	for i := len(s.Body) - 1; i >= 0; i-- {
		style := snakeStyle
		if i == 0 {
			style = headStyle
		}
		r.fill(s.Body[i], style)
	}

	status := fmt.Sprintf("Score: %d  Steps: %d", s.Score, s.Steps)
	r.drawText(0, s.Grid.Height, status, statusStyle)
	if s.State == game.Terminated {
		msg := "Game over"
		switch {
		case s.Won:
			msg = "You win, the board is full"
		case s.Err != nil:
			msg = fmt.Sprintf("Game over: %v", s.Err)
		}
		r.drawText(len(status)+2, s.Grid.Height, msg, gameOverStyle)
	}

	r.screen.Show()
}

func (r *Renderer) fill(p types.Point, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(p.X*cellWidth+i, p.Y, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// KeyDirection maps arrow keys and WASD to a direction.
func KeyDirection(key tcell.Key, ch rune) (types.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return types.Up, true
		case 's', 'S':
			return types.Down, true
		case 'a', 'A':
			return types.Left, true
		case 'd', 'D':
			return types.Right, true
		}
	}
	return types.None, false
}

// IsQuit reports whether the key ends the game: Esc, Ctrl-C or q.
func IsQuit(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}

// Frontend runs a session on a screen the caller has initialised. The caller
// also calls Fini afterwards, which releases the event goroutine.
type Frontend struct {
	Screen   tcell.Screen
	Interval time.Duration
	Linger   time.Duration // how long the final frame stays up
}

// Run plays until game over, a quit key, or ctx is done. A quit key is not
// an error; cancellation of ctx is.
func (f *Frontend) Run(ctx context.Context, sess *game.Session) error {
	renderer := NewRenderer(f.Screen)
	if err := renderer.Fits(sess.Snapshot().Grid); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputs := make(chan types.Direction, 16)
	go f.pollEvents(runCtx, cancel, inputs)

	err := sess.Run(runCtx, f.Interval, inputs, renderer)
	if errors.Is(err, context.Canceled) && ctx.Err() == nil {
		return nil
	}
	if err != nil {
		return err
	}

	select {
	case <-time.After(f.Linger):
	case <-ctx.Done():
	}
	return nil
}

func (f *Frontend) pollEvents(ctx context.Context, quit context.CancelFunc, inputs chan<- types.Direction) {
	for {
		ev := f.Screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuit(ev.Key(), ev.Rune()) {
				quit()
				return
			}
			if dir, ok := KeyDirection(ev.Key(), ev.Rune()); ok {
				select {
				case inputs <- dir:
				case <-ctx.Done():
					return
				}
			}
		case *tcell.EventResize:
			f.Screen.Sync()
		}
	}
}
