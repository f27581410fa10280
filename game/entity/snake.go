package entity

import (
	"errors"
	"fmt"
	"snek/game/types"
)

var (
	ErrWallCollision = errors.New("wall collision")
	ErrSelfCollision = errors.New("self collision")
)

// Snake is an ordered run of cells plus the direction it is moving in.
//
// Internally the body is stored tail first so the head is appended and the
// tail is sliced off; every exported view is head first.
type Snake struct {
	body     []types.Point
	heading  types.Direction // applied on the last Advance
	pending  types.Direction // used by the next Advance
	grid     types.Grid
	occupied []bool // one flag per grid cell
}

// NewSnake builds a snake from body, given head first.
func NewSnake(grid types.Grid, body []types.Point, heading types.Direction) (*Snake, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", grid.Width, grid.Height)
	}
	if len(body) == 0 {
		return nil, errors.New("snake body is empty")
	}
	if !heading.Valid() {
		return nil, fmt.Errorf("invalid heading %v", heading)
	}

	s := &Snake{
		body:     make([]types.Point, 0, len(body)),
		heading:  heading,
		pending:  heading,
		grid:     grid,
		occupied: make([]bool, grid.Area()),
	}
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if !grid.Contains(p) {
			return nil, fmt.Errorf("segment %v outside %dx%d grid", p, grid.Width, grid.Height)
		}
		if s.Occupies(p) {
			return nil, fmt.Errorf("segment %v appears twice", p)
		}
		s.body = append(s.body, p)
		s.occupied[s.index(p)] = true
	}
	return s, nil
}

func (s *Snake) index(p types.Point) int {
	return p.Y*s.grid.Width + p.X
}

// SetHeading queues dir for the next Advance. A reversal of the current
// heading, or an invalid direction, is silently ignored.
func (s *Snake) SetHeading(dir types.Direction) {
	if !dir.Valid() || dir == s.heading.Opposite() {
		return
	}
	s.pending = dir
}

// Heading is the direction the head will move on the next Advance.
func (s *Snake) Heading() types.Direction {
	return s.pending
}

// Advance moves the head one cell. With grew false the tail cell is vacated
// in the same step, so moving onto it is legal; with grew true the tail stays
// and the body gets one cell longer. On error the body is left untouched.
func (s *Snake) Advance(grew bool) error {
	s.heading = s.pending
	head := s.Head()

	newHead, ok := s.grid.Step(head, s.heading)
	if !ok {
		return fmt.Errorf("%w: %v moving %v", ErrWallCollision, head, s.heading)
	}

	tail := s.body[0]
	if s.Occupies(newHead) && (grew || newHead != tail) {
		return fmt.Errorf("%w at %v", ErrSelfCollision, newHead)
	}

	if !grew {
		s.occupied[s.index(tail)] = false
		s.body = s.body[1:]
	}
	s.body = append(s.body, newHead)
	s.occupied[s.index(newHead)] = true
	return nil
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	if !s.grid.Contains(p) {
		return false
	}
	return s.occupied[s.index(p)]
}

func (s *Snake) Head() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}
