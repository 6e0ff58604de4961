// Package game tracks game-level metadata -- phase and castling history -- that the
// evaluator and move ordering need but that a bare Position does not carry.
package game

import "github.com/negamax-engine/negamax/pkg/board"

// Phase represents the stage of the game. It is monotonic: it never regresses from
// Middlegame back to Opening, nor from Endgame back to Middlegame.
type Phase uint8

const (
	Opening Phase = iota
	Middlegame
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	case Endgame:
		return "endgame"
	default:
		return "?"
	}
}

// thresholds for the Middlegame -> Endgame transition: the position has entered the
// endgame once queens are off the board, or at least two of the remaining piece counts
// have dropped to or below these limits.
const (
	pawnThreshold   = 12
	knightThreshold = 3
	bishopThreshold = 3
	rookThreshold   = 3
)

// NextPhase derives the phase that should apply after the given position, given the
// current phase. It never regresses. Opening only ever advances to Middlegame when the
// opening book is exhausted -- that transition is driven externally by the Searcher's
// book probe, not by this function. NextPhase only ever promotes Middlegame to Endgame.
func NextPhase(current Phase, pos *board.Position) Phase {
	if current != Middlegame {
		return current
	}

	queensOff := pos.Piece(board.White, board.Queen) == 0 && pos.Piece(board.Black, board.Queen) == 0

	low := 0
	if count(pos, board.Pawn) <= pawnThreshold {
		low++
	}
	if count(pos, board.Knight) <= knightThreshold {
		low++
	}
	if count(pos, board.Bishop) <= bishopThreshold {
		low++
	}
	if count(pos, board.Rook) <= rookThreshold {
		low++
	}

	if queensOff || low >= 2 {
		return Endgame
	}
	return current
}

func count(pos *board.Position, p board.Piece) int {
	return pos.Piece(board.White, p).PopCount() + pos.Piece(board.Black, p).PopCount()
}

// promoteToMiddlegame transitions Opening to Middlegame. Invoked once the opening book
// is exhausted, per the Searcher's book-probe step.
func promoteToMiddlegame(current Phase) Phase {
	if current == Opening {
		return Middlegame
	}
	return current
}
