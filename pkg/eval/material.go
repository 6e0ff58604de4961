// Package eval implements the phase-aware static evaluator: material, piece-square
// tables, development and pawn-structure bonuses, and endgame king-driving heuristics.
package eval

import "github.com/negamax-engine/negamax/pkg/board"

// PieceValue returns the nominal material value of a piece kind, in centipawns. The
// starting material per side sums to 23,960.
func PieceValue(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 300
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// Material returns the white-minus-black material balance of the position.
func Material(pos *board.Position) board.Score {
	var total board.Score
	for p := board.Pawn; p <= board.King; p++ {
		white := board.Score(pos.Piece(board.White, p).PopCount())
		black := board.Score(pos.Piece(board.Black, p).PopCount())
		total += (white - black) * PieceValue(p)
	}
	return total
}
