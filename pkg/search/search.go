// Package search implements iterative-deepening alpha-beta search over the board
// package's move generation and the eval package's static evaluation, consulting an
// opening book before falling back to search.
package search

import (
	"fmt"
	"time"

	"github.com/negamax-engine/negamax/pkg/board"
)

// PV is the result of a (possibly partial) search: the principal variation, its score
// from the root mover's perspective, and statistics for UCI `info` reporting.
type PV struct {
	Moves []board.Move
	Score board.Score
	Depth int
	Nodes uint64
	Time  time.Duration
}

// BestMove returns the first move of the principal variation. Only valid if len(Moves) > 0.
func (p PV) BestMove() board.Move {
	return p.Moves[0]
}

func (p PV) String() string {
	pv := board.FormatMoves(p.Moves, func(m board.Move) string { return m.String() })
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, pv)
}

// Options hold the dynamic per-search limits the protocol layer may impose.
type Options struct {
	DepthLimit int       // 0 == no limit
	Deadline   time.Time // zero == no deadline
}
