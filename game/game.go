package game

import (
	"errors"
	"fmt"
	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// TickResult tells the caller whether to keep ticking.
type TickResult int

const (
	Continue TickResult = iota
	GameOver
)

func (r TickResult) String() string {
	if r == GameOver {
		return "game over"
	}
	return "continue"
}

// State is the game lifecycle; Terminated is absorbing.
type State int

const (
	Running State = iota
	Terminated
)

// Options configures a new Game. Zero values pick the defaults: a single
// segment at (W/4, H/2) heading right, food on a random free cell.
type Options struct {
	Start   []types.Point // head first
	Heading types.Direction
	Food    *types.Point
	Seed    uint64
}

type Game struct {
	Grid types.Grid

	snake *entity.Snake
	food  *manager.FoodManager
	rng   *rand.Rand

	pendingGrowth bool
	ate           bool
	score         int
	steps         int
	state         State
	err           error
}

// DefaultStart returns a snake of length segments with its head at
// (W/4, H/2) and the rest trailing to the left.
func DefaultStart(grid types.Grid, length int) []types.Point {
	head := types.Point{X: grid.Width / 4, Y: grid.Height / 2}
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return body
}

func NewGame(grid types.Grid, opts Options) (*Game, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", grid.Width, grid.Height)
	}
	if opts.Start == nil {
		opts.Start = DefaultStart(grid, 1)
	}
	if opts.Heading == types.None {
		opts.Heading = types.Right
	}

	snake, err := entity.NewSnake(grid, opts.Start, opts.Heading)
	if err != nil {
		return nil, fmt.Errorf("new snake: %w", err)
	}

	g := &Game{
		Grid:  grid,
		snake: snake,
		food:  manager.NewFoodManager(grid),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		state: Running,
	}

	if opts.Food != nil {
		err = g.food.Place(*opts.Food, snake)
	} else {
		err = g.food.Respawn(snake, g.rng)
	}
	if err != nil {
		return nil, fmt.Errorf("place food: %w", err)
	}
	return g, nil
}

// Tick advances the game by one step. Growth from food eaten on this tick is
// applied on the next one, and the score follows the growth.
func (g *Game) Tick() TickResult {
	if g.state == Terminated {
		return GameOver
	}
	g.ate = false

	if err := g.snake.Advance(g.pendingGrowth); err != nil {
		g.terminate(err)
		return GameOver
	}
	g.steps++

	if g.pendingGrowth {
		g.pendingGrowth = false
		g.score++
	}

	if g.food.CheckEaten(g.snake.Head()) {
		g.pendingGrowth = true
		g.ate = true
		if err := g.food.Respawn(g.snake, g.rng); err != nil {
			g.terminate(err)
			return GameOver
		}
	}
	return Continue
}

func (g *Game) terminate(err error) {
	g.state = Terminated
	g.err = err
}

// OnDirectionInput queues a heading change for the next tick.
func (g *Game) OnDirectionInput(dir types.Direction) {
	if g.state == Terminated {
		return
	}
	g.snake.SetHeading(dir)
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

// Err is the cause of termination, nil while running.
func (g *Game) Err() error {
	return g.err
}

// Ate reports whether the last tick landed on food.
func (g *Game) Ate() bool {
	return g.ate
}

// Won reports whether the game ended because the snake filled the board.
func (g *Game) Won() bool {
	return errors.Is(g.err, manager.ErrBoardFull)
}

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Grid    types.Grid
	Body    []types.Point // head first
	Food    types.Point
	Heading types.Direction
	Score   int
	Steps   int
	State   State
	Err     error
	Won     bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:    g.Grid,
		Body:    g.snake.Body(),
		Food:    g.food.Position(),
		Heading: g.snake.Heading(),
		Score:   g.score,
		Steps:   g.steps,
		State:   g.state,
		Err:     g.err,
		Won:     g.Won(),
	}
}
