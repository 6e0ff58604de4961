package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/book"
	"github.com/negamax-engine/negamax/pkg/game"
	"github.com/negamax-engine/negamax/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 89, 3)

// Options are default search options, overridable on a per-search basis.
type Options struct {
	// Depth is the default search depth limit. If zero, there is no limit and the
	// search instead runs until a deadline is reached.
	Depth int
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// Engine encapsulates game-playing logic, search and evaluation: a root board, its
// game-phase state, and a searcher consulting an opening book before falling back to
// alpha-beta. Single-threaded: one goroutine owns it for the lifetime of the protocol
// loop, so the mutex only guards against accidental concurrent misuse, not real
// contention.
type Engine struct {
	name, author string

	searcher *search.Searcher
	zt       *board.ZobristTable
	opts     Options

	b     *board.Board
	state *game.State
	mu    sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithBook configures the engine to consult the given opening book before searching.
func WithBook(b *book.Book) Option {
	return func(e *Engine) {
		e.searcher.Book = b
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		searcher: search.NewSearcher(nil),
		zt:       board.NewZobristTable(0),
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
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

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

// Board returns a forked board.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Fork()
}

// Position returns the current position in FEN format. Convenience function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// Reset reinitializes the engine to the given position, clearing history, resetting
// the game phase, and rewinding the opening book pointer to its root.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, depth=%v", position, e.opts.Depth)

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)
	e.state = game.NewState(pos)
	if e.searcher.Book != nil {
		e.searcher.Book.Reset()
	}

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// Move applies the given move, usually an opponent move, descending the opening book
// pointer and advancing the game phase alongside it.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	for _, m := range e.b.Position().PseudoLegalMoves(e.b.Turn()) {
		if !candidate.Equals(m) {
			continue
		}

		// Candidate is at least pseudo-legal.

		mover := e.b.Turn()
		if !e.b.PushMove(m) {
			return fmt.Errorf("illegal move: %v", m)
		}
		if e.searcher.Book != nil && !e.searcher.Book.Descend(m) {
			e.state.EnterMiddlegame() // off-book: the book has nothing for this position
		}
		e.state.Update(mover, m, e.b.Position())

		logw.Infof(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("invalid move: %v", candidate)
}

// TakeBack undoes the latest move. The opening book pointer is not rewound: it only
// ever advances.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.b.PopMove()
	if !ok {
		return fmt.Errorf("no move to take back")
	}

	logw.Infof(ctx, "Takeback %v", m)
	return nil
}

// ChooseMove runs the book probe and, if it misses, iterative-deepening alpha-beta
// search, then plays the chosen move on the internal board. Blocking: per the
// single-threaded, cooperative concurrency model, a caller gets control back only once
// the move has been chosen and played.
func (e *Engine) ChooseMove(ctx context.Context, opt search.Options) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opt.DepthLimit <= 0 {
		opt.DepthLimit = e.opts.Depth
	}

	logw.Infof(ctx, "ChooseMove %v, opt=%v", e.b, opt)

	pv := e.searcher.ChooseMove(ctx, e.b, e.state, opt)
	if len(pv.Moves) == 0 {
		return pv, fmt.Errorf("no legal move")
	}

	mover := e.b.Turn()
	m := pv.Moves[0]
	if !e.b.PushMove(m) {
		return pv, fmt.Errorf("search produced illegal move: %v", m)
	}
	e.state.Update(mover, m, e.b.Position())

	logw.Infof(ctx, "ChooseMove %v: %v", m, pv)
	return pv, nil
}
