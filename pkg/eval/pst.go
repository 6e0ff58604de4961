package eval

import "github.com/negamax-engine/negamax/pkg/board"

// Piece-square tables are indexed a1..h8 (rank-major, file a first), matching the
// convention the tables were authored in. pstIndex converts a board.Square (which is
// numbered the opposite way, h1=0..a8=63) into that index. The black table for a given
// piece is never stored separately: black[i] == white[63-i] always holds, so lookups for
// Black simply mirror the index.
func pstIndex(s board.Square) int {
	return int(s.Rank())*8 + (7 - int(s.File()))
}

// squareBonus returns the piece-square table bonus for a piece of the given kind and
// color standing on s. kingTable selects which king table to use (middlegame or
// endgame); it is ignored for all other piece kinds.
func squareBonus(p board.Piece, c board.Color, s board.Square, kingTable [64]board.Score) board.Score {
	idx := pstIndex(s)

	var white [64]board.Score
	switch p {
	case board.Pawn:
		white = pawnTable
	case board.Knight:
		white = knightTable
	case board.Bishop:
		white = bishopTable
	case board.Rook:
		white = rookTable
	case board.Queen:
		white = queenTable
	case board.King:
		white = kingTable
	default:
		return 0
	}

	if c == board.White {
		return white[idx]
	}
	return white[63-idx]
}

var knightTable = [64]board.Score{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pawnTable = [64]board.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var bishopTable = [64]board.Score{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var queenTable = [64]board.Score{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var rookTable = [64]board.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var kingMiddlegameTable = [64]board.Score{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgameTable = [64]board.Score{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// kingEdgePush drives a bare enemy king toward the edge during the endgame. No such
// table appears in the reference material; it is generated to satisfy spec.md's stated
// bounds of roughly -20 at the center to +16 at the corners.
var kingEdgePush = func() [64]board.Score {
	var t [64]board.Score
	for idx := 0; idx < 64; idx++ {
		file := idx % 8
		rank := idx / 8
		df := file
		if 7-file < df {
			df = 7 - file
		}
		dr := rank
		if 7-rank < dr {
			dr = 7 - rank
		}
		centerDist := df + dr
		t[idx] = board.Score(16 - 6*centerDist)
	}
	return t
}()

// kingEdgePushBonus returns the kingEdgePush value for the given square, independent of
// color (the table is symmetric: driving any bare king to the edge is the goal).
func kingEdgePushBonus(s board.Square) board.Score {
	return kingEdgePush[pstIndex(s)]
}
