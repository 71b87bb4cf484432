package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lge88/snake/internal/core"
)

// Terminal banner messages.
const (
	MsgGameOver = "Game Over!"
	MsgWin      = "You Win!"
)

// State is a snapshot of the session for HUDs and tests.
type State struct {
	Score   int
	Ended   bool
	Message string
}

// Session runs one game from first frame to terminal state. It owns the
// snake, the food and the score; a session is never restarted in place,
// the host builds a fresh one instead. All methods must be called from a
// single goroutine (the host's event loop).
type Session struct {
	opts   Options
	snake  *Snake
	food   *Food
	placer *Placer

	score   int
	message string // empty while running, latched once ended

	pending    core.Direction
	hasPending bool

	epoch     time.Time
	started   bool
	lastFrame int64
}

// NewSession validates opts and sets up the initial board: the configured
// snake plus one food cell placed off the body. Seed zero is replaced with
// a time-based seed.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts:      opts,
		snake:     NewSnake(opts.Snake, opts.Direction, opts.SnakeColor),
		placer:    NewPlacer(rand.New(rand.NewSource(seed))),
		lastFrame: -1,
	}
	if err := s.placeFood(); err != nil {
		// The configured snake already fills the grid.
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return s, nil
}

// placeFood draws a fresh food cell from the free cells of the grid.
func (s *Session) placeFood() error {
	cell, err := s.placer.Generate(s.opts.Width, s.opts.Height, s.snake.cells)
	if err != nil {
		return err
	}
	s.food = &Food{Cell: cell, Color: s.opts.FoodColor}
	return nil
}

// SetDirectionIntent records the direction to apply on the next update.
// Intents are not queued: the last one written before a frame wins.
func (s *Session) SetDirectionIntent(d core.Direction) {
	s.pending = d
	s.hasPending = true
}

// State returns the current score and terminal status.
func (s *Session) State() State {
	return State{Score: s.score, Ended: s.message != "", Message: s.message}
}

// Advance runs the paced callback for timestamp now. The frame count is
// the elapsed time since the first callback divided by the frame interval;
// an update+render pass runs only when that integer exceeds the count of
// the last processed pass. Comparing against the processed count rather
// than accumulating deltas keeps the pace drift-free under any callback
// cadence. Reports whether a pass ran.
func (s *Session) Advance(now time.Time, r Renderer) bool {
	if !s.started {
		s.epoch = now
		s.started = true
	}

	frame := int64(now.Sub(s.epoch) / s.opts.FrameInterval)
	if frame <= s.lastFrame {
		return false
	}
	s.lastFrame = frame

	s.update()
	s.Render(r)
	return true
}

// update applies one simulation step. The terminal state latches: once
// ended, nothing moves again.
func (s *Session) update() {
	if s.message != "" {
		return
	}

	if s.hasPending {
		s.snake.SetDirection(s.pending)
		s.hasPending = false
	}

	candidate := s.snake.NextHead()

	if !candidate.InBounds(s.opts.Width, s.opts.Height) || s.snake.WouldHitSelf(candidate) {
		s.message = MsgGameOver
		return
	}

	if s.food != nil && candidate == s.food.Cell {
		s.snake.Eat(candidate)
		s.score++
		if err := s.placeFood(); err != nil {
			// Every cell is snake: the board is beaten.
			s.food = nil
			s.message = MsgWin
		}
		return
	}

	s.snake.Move(candidate)
}

// Render paints the current state: the live board while running, or only
// the terminal banner over whatever was drawn last.
func (s *Session) Render(r Renderer) {
	if s.message != "" {
		r.DrawBanner(s.message)
		return
	}

	r.Clear()
	s.snake.Draw(r)
	if s.food != nil {
		s.food.Draw(r)
	}
}
