package manager

import (
	"errors"
	"fmt"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned by Respawn when no cell is left for food.
var ErrBoardFull = errors.New("board full")

// Occupier tells the food manager which cells are taken.
type Occupier interface {
	Occupies(p types.Point) bool
}

type FoodManager struct {
	grid types.Grid
	food types.Point
}

func NewFoodManager(grid types.Grid) *FoodManager {
	return &FoodManager{grid: grid}
}

// Respawn moves the food to a uniformly chosen cell not held by avoid.
// Free cells are enumerated and one is drawn by index, so the call always
// terminates; on a full board the food stays where it is.
func (fm *FoodManager) Respawn(avoid Occupier, rng *rand.Rand) error {
	free := make([]types.Point, 0, fm.grid.Area())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !avoid.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return ErrBoardFull
	}
	fm.food = free[rng.Intn(len(free))]
	return nil
}

// Place puts the food on a fixed cell.
func (fm *FoodManager) Place(p types.Point, avoid Occupier) error {
	if !fm.grid.Contains(p) {
		return fmt.Errorf("food %v outside %dx%d grid", p, fm.grid.Width, fm.grid.Height)
	}
	if avoid.Occupies(p) {
		return fmt.Errorf("food %v placed on the snake", p)
	}
	fm.food = p
	return nil
}

// CheckEaten reports whether head is on the food.
func (fm *FoodManager) CheckEaten(head types.Point) bool {
	return head == fm.food
}

func (fm *FoodManager) Position() types.Point {
	return fm.food
}
