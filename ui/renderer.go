//go:build !ebiten

package ui

import (
	"fmt"
	"snek/game"
	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 20
	textPad  = 4
)

var (
	background = rl.Blue
	snakeColor = rl.Red
	headColor  = rl.Maroon
	foodColor  = rl.Green
)

// Renderer draws snapshots into the raylib window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()

	// Center the field when the window is larger than the grid
	r.offsetX = max((r.screenWidth-r.cellSize*int32(s.Grid.Width))/2, 0)
	r.offsetY = max((r.screenHeight-r.cellSize*int32(s.Grid.Height))/2, 0)

	rl.BeginDrawing()
	rl.ClearBackground(background)

	r.drawCell(s.Food, foodColor)
	for i, p := range s.Body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(p, color)
	}
	if len(s.Body) > 0 && s.State == game.Running {
		r.drawHeading(s.Body[0], s.Heading)
	}

	rl.DrawText(fmt.Sprintf("Score: %d  Steps: %d", s.Score, s.Steps), textPad, textPad, fontSize, rl.White)
	if s.State == game.Terminated {
		text := "Game Over!"
		switch {
		case s.Won:
			text = "You Win! The board is full."
		case s.Err != nil:
			text = fmt.Sprintf("Game Over! (%v)", s.Err)
		}
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text, (r.screenWidth-width)/2, r.screenHeight/2-fontSize/2, fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHeading puts a small triangle on the head pointing where it will move.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x := float32(r.offsetX + int32(head.X)*r.cellSize)
	y := float32(r.offsetY + int32(head.Y)*r.cellSize)
	size := float32(r.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	case types.Up:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	default:
		return
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}
