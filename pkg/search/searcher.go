package search

import (
	"context"
	"time"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/book"
	"github.com/negamax-engine/negamax/pkg/game"
	"github.com/seekerror/logw"
)

// Searcher drives the opening-book probe and iterative-deepening alpha-beta search
// over a Board. Not thread-safe: the protocol loop serializes access to it the same
// way it serializes command processing, so a single Searcher is reused across a game.
type Searcher struct {
	Book *book.Book
}

// NewSearcher returns a Searcher consulting the given opening book. b may be nil, in
// which case ChooseMove always falls through to alpha-beta search.
func NewSearcher(b *book.Book) *Searcher {
	return &Searcher{Book: b}
}

// ChooseMove picks a move for the board's side to move, honoring opt's depth limit and
// deadline. g is advanced in place: a book hit descends the book's pointer and may
// promote Opening to Middlegame once the book runs dry; a searched move may promote
// Middlegame to Endgame.
func (s *Searcher) ChooseMove(ctx context.Context, b *board.Board, g *game.State, opt Options) PV {
	if pv, ok := s.probeBook(b, g); ok {
		return pv
	}
	return s.iterate(ctx, b, g, opt)
}

// probeBook implements the book-probe step: while the game is in the Opening phase and the
// current position has a suggested continuation, play it without searching and descend
// the book pointer. Without a book, the game leaves the Opening phase at the first probe.
func (s *Searcher) probeBook(b *board.Board, g *game.State) (PV, bool) {
	if g.Phase != game.Opening {
		return PV{}, false
	}
	if s.Book == nil {
		g.EnterMiddlegame()
		return PV{}, false
	}

	m, ok := s.Book.Suggest()
	if !ok {
		g.EnterMiddlegame()
		return PV{}, false
	}

	s.Book.Descend(m)
	if s.Book.IsExhausted() {
		g.EnterMiddlegame()
	}
	return PV{Moves: []board.Move{m}}, true
}

// iterate runs iterative deepening: the deadline is polled only between completed
// depths, never mid-subtree, so a `go` command returns no later than the time to finish
// the currently active depth.
func (s *Searcher) iterate(ctx context.Context, b *board.Board, g *game.State, opt Options) PV {
	root := b.Turn()
	g.Phase = game.NextPhase(g.Phase, b.Position()) // root ordering sees the root position's phase
	moves := orderMoves(b.Position().LegalMoves(root), b.Position(), g.Phase == game.Endgame)
	if len(moves) == 0 {
		return PV{}
	}

	// Fallback in case even depth 1 somehow never completes: a legal move, scored 0.
	best := PV{Moves: []board.Move{moves[0]}}

	depthLimit := opt.DepthLimit
	if depthLimit <= 0 {
		depthLimit = 1 << 20 // effectively unbounded: the deadline governs termination
	}

	start := time.Now()
	for depth := 1; depth <= depthLimit; depth++ {
		if depth > 1 && !opt.Deadline.IsZero() && !time.Now().Before(opt.Deadline) {
			break
		}

		pv, ok := s.searchRoot(b, g, moves, depth, root)
		if !ok {
			break
		}
		pv.Time = time.Since(start)
		best = pv

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)
	}

	return best
}

// searchRoot runs one full iterative-deepening depth over the root's legal moves. Per
// the source pseudocode, every root child is searched with the full (-INF, +INF)
// window rather than narrowing alpha across siblings.
func (s *Searcher) searchRoot(b *board.Board, g *game.State, moves []board.Move, depth int, root board.Color) (PV, bool) {
	var (
		bestMove  board.Move
		bestScore = board.MinScore
		nodes     uint64
		found     bool
	)

	for _, m := range moves {
		if !b.PushMove(m) {
			continue
		}

		savedPhase := g.Phase
		score, n := alphaBeta(b, g, depth-1, board.MinScore, board.MaxScore, root)
		nodes += n

		b.PopMove()
		g.Phase = savedPhase

		if !found || score > bestScore {
			bestScore = score
			bestMove = m
			found = true
		}
	}

	if !found {
		return PV{}, false
	}
	return PV{Moves: []board.Move{bestMove}, Score: bestScore, Depth: depth, Nodes: nodes}, true
}
