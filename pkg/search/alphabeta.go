package search

import (
	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/eval"
	"github.com/negamax-engine/negamax/pkg/game"
)

// alphaBeta implements fail-hard minimax with alpha-beta pruning. Pseudo-code:
//
//	alpha_beta(B, d, α, β, maximizing):
//	    if d == 0 or legal_moves(B) empty:
//	        return eval(B)
//	    moves = order(legal_moves(B), B, G)
//	    if maximizing:
//	        v = -INF
//	        for m in moves:
//	            v = max(v, alpha_beta(make_move(B,m), d-1, α, β, false))
//	            α = max(α, v); if β <= α: break
//	        return v
//	    else:
//	        v = +INF
//	        for m in moves:
//	            v = min(v, alpha_beta(make_move(B,m), d-1, α, β, true))
//	            β = min(β, v); if β <= α: break
//	        return v
//
// eval.Evaluate always scores a position from root's fixed perspective, so alpha and
// beta are shared unchanged across both maximizing and minimizing levels -- there is no
// per-ply negation, unlike a classic negamax formulation. maximizing is derived from
// whether the side to move at the current node is root.
//
// g is threaded down the search stack the same way the board is: pushed forward as a
// side effect of evaluating descendant positions, and restored after each child
// returns, so a phase transition discovered deep in one branch never leaks into a
// sibling branch.
func alphaBeta(b *board.Board, g *game.State, depth int, alpha, beta board.Score, root board.Color) (board.Score, uint64) {
	moves := b.Position().LegalMoves(b.Turn())
	if depth == 0 || len(moves) == 0 {
		return eval.Evaluate(b, root, g), 1
	}

	maximizing := b.Turn() == root
	ordered := orderMoves(moves, b.Position(), g.Phase == game.Endgame)

	var nodes uint64 = 1
	savedPhase := g.Phase

	if maximizing {
		v := board.MinScore
		for _, m := range ordered {
			if !b.PushMove(m) {
				continue
			}
			score, n := alphaBeta(b, g, depth-1, alpha, beta, root)
			nodes += n
			b.PopMove()
			g.Phase = savedPhase

			if score > v {
				v = score
			}
			if v > alpha {
				alpha = v
			}
			if beta <= alpha {
				break
			}
		}
		return v, nodes
	}

	v := board.MaxScore
	for _, m := range ordered {
		if !b.PushMove(m) {
			continue
		}
		score, n := alphaBeta(b, g, depth-1, alpha, beta, root)
		nodes += n
		b.PopMove()
		g.Phase = savedPhase

		if score < v {
			v = score
		}
		if v < beta {
			beta = v
		}
		if beta <= alpha {
			break
		}
	}
	return v, nodes
}
