package search

import "github.com/negamax-engine/negamax/pkg/board"

// orderMoves implements the move-ordering step: checks (endgame only) first, then
// captures, then promotions, then everything else -- a stable sort, so moves within a
// tier keep their original relative order.
func orderMoves(moves []board.Move, pos *board.Position, endgame bool) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)

	board.SortByPriority(ordered, func(m board.Move) board.MovePriority {
		return movePriority(m, pos, endgame)
	})
	return ordered
}

func movePriority(m board.Move, pos *board.Position, endgame bool) board.MovePriority {
	var p board.MovePriority
	if endgame && givesCheck(m, pos) {
		p += 4
	}
	if m.IsCapture() {
		p += 2
	}
	if m.IsPromotion() {
		p += 1
	}
	return p
}

func givesCheck(m board.Move, pos *board.Position) bool {
	mover, _, found := pos.Square(m.From)
	if !found {
		return false
	}
	next, ok := pos.Move(m)
	if !ok {
		return false
	}
	return next.IsChecked(mover.Opponent())
}
