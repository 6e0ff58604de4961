package eval

import (
	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/game"
)

// homeSquarePenalty is subtracted once for every non-pawn non-queen piece still
// sitting on its initial square, to nudge development.
const homeSquarePenalty board.Score = 5

const (
	bishopPairBonus board.Score = 10
	passedPawnBase  board.Score = 15
	checkBonus      board.Score = 20
)

// passedPawnRankBonus is indexed by the pawn's rank counted from its own starting
// rank (0 at the start rank, 5 just before promotion).
var passedPawnRankBonus = [8]board.Score{0, 10, 30, 40, 50, 60, 90, 0}

// Evaluate returns the static score of b's current position, in centipawns, from
// root's perspective. g is updated in place: its phase may advance, and its
// Opening->Middlegame transition is driven externally by the Searcher via
// g.EnterMiddlegame, not by Evaluate itself.
func Evaluate(b *board.Board, root board.Color, g *game.State) board.Score {
	pos := b.Position()
	mover := b.Turn()

	// Step 1: repetition.
	if b.RepetitionCount() >= 3 {
		return 0
	}

	// Step 2: terminal status.
	if len(pos.LegalMoves(mover)) == 0 {
		if pos.IsChecked(mover) {
			if mover == root {
				return board.MinScore
			}
			return board.MaxScore
		}
		return 0
	}

	score := evaluateOngoing(pos, g)

	// Step 10: perspective. The accumulated score is White-relative (material, PST and
	// the endgame extras below are all signed by color, not by mover), so it must be
	// negated iff root is Black, regardless of which side is to move in b.
	if root == board.Black {
		score = -score
	}
	return score
}

func evaluateOngoing(pos *board.Position, g *game.State) board.Score {
	// Step 3: material.
	score := Material(pos)

	// Step 4: piece-square tables. The king uses the endgame table only once the
	// phase has actually reached Endgame.
	kingTable := kingMiddlegameTable
	if g.Phase == game.Endgame {
		kingTable = kingEndgameTable
	}

	for _, c := range []board.Color{board.White, board.Black} {
		sign := c.Unit()
		for p := board.Pawn; p <= board.King; p++ {
			bb := pos.Piece(c, p)
			for bb != 0 {
				sq := bb.LastPopSquare()
				bb &^= board.BitMask(sq)
				score += sign * squareBonus(p, c, sq, kingTable)

				// Step 5: home-square penalty.
				if isOnHomeSquare(p, c, sq) {
					score -= sign * homeSquarePenalty
				}
			}
		}
	}

	// Step 6: bishop pair.
	if pos.Piece(board.White, board.Bishop).PopCount() >= 2 {
		score += bishopPairBonus
	}
	if pos.Piece(board.Black, board.Bishop).PopCount() >= 2 {
		score -= bishopPairBonus
	}

	// Step 7: passed pawns.
	score += passedPawnBonus(pos, board.White)
	score -= passedPawnBonus(pos, board.Black)

	// Step 8: phase update.
	g.Phase = game.NextPhase(g.Phase, pos)

	// Step 9: endgame-only extras.
	if g.Phase == game.Endgame {
		// Signed like everything else here, White-relative: a checked Black king is
		// good for White (+checkBonus), a checked White king is good for Black
		// (-checkBonus).
		if pos.IsChecked(board.Black) {
			score += checkBonus
		}
		if pos.IsChecked(board.White) {
			score -= checkBonus
		}

		for _, c := range []board.Color{board.White, board.Black} {
			kingSq := pos.Piece(c, board.King).LastPopSquare()
			score -= c.Unit() * kingEdgePushBonus(kingSq)
		}
	}

	return score
}

func isOnHomeSquare(p board.Piece, c board.Color, sq board.Square) bool {
	switch p {
	case board.Knight:
		if c == board.White {
			return sq == board.B1 || sq == board.G1
		}
		return sq == board.B8 || sq == board.G8
	case board.Bishop:
		if c == board.White {
			return sq == board.C1 || sq == board.F1
		}
		return sq == board.C8 || sq == board.F8
	case board.Rook:
		if c == board.White {
			return sq == board.A1 || sq == board.H1
		}
		return sq == board.A8 || sq == board.H8
	case board.King:
		if c == board.White {
			return sq == board.E1
		}
		return sq == board.E8
	default:
		return false
	}
}

// passedPawnBonus sums the passed-pawn bonus for every pawn of color c.
func passedPawnBonus(pos *board.Position, c board.Color) board.Score {
	enemyPawns := pos.Piece(c.Opponent(), board.Pawn)

	var total board.Score
	bb := pos.Piece(c, board.Pawn)
	for bb != 0 {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)

		if enemyPawns&forwardSpan(c, sq) != 0 {
			continue
		}

		rank := rankFromStart(c, sq)
		total += passedPawnBase + passedPawnRankBonus[rank]
	}
	return total
}

// forwardSpan returns the 3-file mask (own file plus adjacent files) covering every
// rank strictly ahead of sq, from c's perspective.
func forwardSpan(c board.Color, sq board.Square) board.Bitboard {
	f := sq.File()
	files := board.BitFile(f)
	if f > board.ZeroFile {
		files |= board.BitFile(f - 1)
	}
	if f < board.FileA {
		files |= board.BitFile(f + 1)
	}

	var ranks board.Bitboard
	r := int(sq.Rank())
	if c == board.White {
		for rr := r + 1; rr <= int(board.Rank8); rr++ {
			ranks |= board.BitRank(board.Rank(rr))
		}
	} else {
		for rr := r - 1; rr >= int(board.Rank1); rr-- {
			ranks |= board.BitRank(board.Rank(rr))
		}
	}
	return files & ranks
}

// rankFromStart returns the pawn's rank counted from its own starting rank: 0 on the
// starting rank, up to 5 just before promotion.
func rankFromStart(c board.Color, sq board.Square) int {
	if c == board.White {
		return int(sq.Rank()) - int(board.Rank2)
	}
	return int(board.Rank7) - int(sq.Rank())
}
