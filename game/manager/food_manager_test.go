package manager

import (
	"errors"
	"snek/game/types"
	"testing"

	"golang.org/x/exp/rand"
)

type cellSet map[types.Point]bool

func (c cellSet) Occupies(p types.Point) bool { return c[p] }

func TestRespawnAvoidsOccupiedCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	taken := cellSet{}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			taken[types.Point{X: x, Y: y}] = true
		}
	}
	delete(taken, types.Point{X: 2, Y: 1})

	fm := NewFoodManager(grid)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		if err := fm.Respawn(taken, rng); err != nil {
			t.Fatalf("Respawn: %v", err)
		}
		if fm.Position() != (types.Point{X: 2, Y: 1}) {
			t.Fatalf("food at %v, only (2,1) is free", fm.Position())
		}
	}
}

func TestRespawnDeterministic(t *testing.T) {
	grid := types.Grid{Width: 16, Height: 16}
	taken := cellSet{{X: 0, Y: 0}: true, {X: 1, Y: 0}: true}

	sequence := func(seed uint64) []types.Point {
		fm := NewFoodManager(grid)
		rng := rand.New(rand.NewSource(seed))
		var out []types.Point
		for i := 0; i < 10; i++ {
			if err := fm.Respawn(taken, rng); err != nil {
				t.Fatalf("Respawn: %v", err)
			}
			if taken.Occupies(fm.Position()) {
				t.Fatalf("food on taken cell %v", fm.Position())
			}
			out = append(out, fm.Position())
		}
		return out
	}

	a, b := sequence(99), sequence(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a, b)
		}
	}
}

func TestRespawnBoardFull(t *testing.T) {
	grid := types.Grid{Width: 1, Height: 2}
	taken := cellSet{{X: 0, Y: 0}: true, {X: 0, Y: 1}: true}

	fm := NewFoodManager(grid)
	if err := fm.Place(types.Point{X: 0, Y: 1}, cellSet{}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	err := fm.Respawn(taken, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want board full", err)
	}
	if fm.Position() != (types.Point{X: 0, Y: 1}) {
		t.Errorf("food moved on failed respawn: %v", fm.Position())
	}
}

func TestPlaceAndCheckEaten(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid)

	if err := fm.Place(types.Point{X: 4, Y: 0}, cellSet{}); err == nil {
		t.Error("expected error placing food off the grid")
	}
	if err := fm.Place(types.Point{X: 1, Y: 1}, cellSet{{X: 1, Y: 1}: true}); err == nil {
		t.Error("expected error placing food on the snake")
	}
	if err := fm.Place(types.Point{X: 2, Y: 1}, cellSet{}); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if !fm.CheckEaten(types.Point{X: 2, Y: 1}) {
		t.Error("head on food not detected")
	}
	if fm.CheckEaten(types.Point{X: 1, Y: 2}) {
		t.Error("false positive eat")
	}
	if fm.Position() != (types.Point{X: 2, Y: 1}) {
		t.Error("CheckEaten must not move the food")
	}
}
