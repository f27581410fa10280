package game

import (
	"context"
	"log"
	"snek/game/types"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Renderer draws one frame from a snapshot.
type Renderer interface {
	Draw(s Snapshot)
}

// Listener is notified of game events after the session lock is released.
type Listener interface {
	FoodEaten()
	GameOver(score int, cause error)
}

// Session is the single owner of a Game. Ticks and inputs may arrive from
// different goroutines; the mutex keeps them in delivery order.
type Session struct {
	UUID      string
	StartTime time.Time

	mu       sync.Mutex
	game     *Game
	listener Listener
	done     bool
}

func NewSession(g *Game, listener Listener) *Session {
	return &Session{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
		game:      g,
		listener:  listener,
	}
}

func (s *Session) Tick() TickResult {
	s.mu.Lock()
	res := s.game.Tick()
	ate := s.game.Ate()
	score, cause := s.game.Score(), s.game.Err()
	ended := res == GameOver && !s.done
	if ended {
		s.done = true
	}
	s.mu.Unlock()

	if ate {
		log.Printf("session %s: food eaten, score %d", s.UUID, score)
		if s.listener != nil {
			s.listener.FoodEaten()
		}
	}
	if ended {
		log.Printf("session %s: game over after %s, score %d: %v",
			s.UUID, time.Since(s.StartTime).Round(time.Millisecond), score, cause)
		if s.listener != nil {
			s.listener.GameOver(score, cause)
		}
	}
	return res
}

// Input forwards a direction to the game; it takes effect on the next tick.
func (s *Session) Input(dir types.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.OnDirectionInput(dir)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// drain applies every input already queued on ch without blocking. It
// returns nil once ch is closed so the caller stops selecting on it.
func (s *Session) drain(ch <-chan types.Direction) <-chan types.Direction {
	for {
		select {
		case dir, ok := <-ch:
			if !ok {
				return nil
			}
			s.Input(dir)
		default:
			return ch
		}
	}
}

// Run drives the session from a ticker until the game ends or ctx is done.
// Inputs received between two ticks are applied in order before the next
// tick. A frame is drawn at start and after every tick.
func (s *Session) Run(ctx context.Context, interval time.Duration, inputs <-chan types.Direction, r Renderer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.Draw(s.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case dir, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			s.Input(dir)

		case <-ticker.C:
			inputs = s.drain(inputs)
			res := s.Tick()
			r.Draw(s.Snapshot())
			if res == GameOver {
				return nil
			}
		}
	}
}
