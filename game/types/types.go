package types

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Step returns the neighbour of p in direction d. The bounds are checked
// before the shift, so an out-of-range point is never produced; ok is false
// when the move would leave the grid.
func (g Grid) Step(p Point, d Direction) (next Point, ok bool) {
	switch d {
	case Up:
		if p.Y <= 0 {
			return p, false
		}
	case Down:
		if p.Y >= g.Height-1 {
			return p, false
		}
	case Left:
		if p.X <= 0 {
			return p, false
		}
	case Right:
		if p.X >= g.Width-1 {
			return p, false
		}
	default:
		return p, false
	}
	delta := d.ToPoint()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}, true
}

// Direction is a cardinal direction
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit displacement (Y grows downwards).
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
