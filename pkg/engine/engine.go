package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/sigurdsson/brandub/pkg/board"
	"github.com/sigurdsson/brandub/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates game state and the MCTS search driver behind a small
// mutex-guarded API.
type Engine struct {
	name, author string

	cfg search.Config
	ctx *search.Context

	s  *board.GameState
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithConfig sets the search configuration used for every ComputerMove call.
func WithConfig(cfg search.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		cfg:    search.DefaultConfig(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v, config=%+v", e.Name(), e.cfg)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Reset resets the engine to the fixed Copenhagen starting position and
// allocates a fresh search context, discarding the transposition table.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctx = search.NewContext(e.cfg)
	e.s = board.NewInitialState(e.ctx.ZobristTable())

	logw.Infof(ctx, "Reset: %v", e.s)
}

// State returns a forked copy of the current game state.
func (e *Engine) State() *board.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.Fork()
}

// Side returns the color to move.
func (e *Engine) Side() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.Side
}

// LegalMoves returns the legal moves from the current position.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	var buf board.MoveList
	board.LegalMoves(e.ctx.ZobristTable(), e.s, &buf)

	moves := make([]board.Move, buf.Len())
	for i := range moves {
		moves[i] = buf.At(i)
	}
	return moves
}

// Move applies a human-supplied move, usually the opponent's.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	var buf board.MoveList
	board.LegalMoves(e.ctx.ZobristTable(), e.s, &buf)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if !candidate.Equals(m) {
			continue
		}
		board.ApplyMove(e.ctx.ZobristTable(), e.s, m)
		logw.Infof(ctx, "Move %v: %v", m, e.s)
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// ComputerMove lets the search driver choose and apply a move for the side to move.
func (e *Engine) ComputerMove(ctx context.Context) board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.ctx.ComputerMove(ctx, e.s)
	logw.Infof(ctx, "ComputerMove %v: %v", m, e.s)
	return m
}

// Result reports the game outcome, if decided.
func (e *Engine) Result() board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return board.CheckGameOver(e.ctx.ZobristTable(), e.s)
}

// Render returns a human-readable rendering of the current position.
func (e *Engine) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.String()
}
