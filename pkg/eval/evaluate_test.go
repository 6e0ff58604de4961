package eval_test

import (
	"testing"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/eval"
	"github.com/negamax-engine/negamax/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()

	pos, turn, np, fm, err := fen.Decode(f)
	require.NoError(t, err)

	return board.NewBoard(board.NewZobristTable(1), pos, turn, np, fm)
}

func TestEvaluate_InitialPositionIsBalanced(t *testing.T) {
	b := newBoard(t, fen.Initial)
	g := game.NewState(b.Position())

	assert.Zero(t, eval.Evaluate(b, b.Turn(), g))
}

func TestEvaluate_MaterialAdvantageIsPositive(t *testing.T) {
	// White has all its pieces but no pawns; Black has a lone king.
	b := newBoard(t, "4k3/8/8/8/8/8/8/RNBQKBNR w - - 0 1")
	g := game.NewState(b.Position())

	assert.Positive(t, eval.Evaluate(b, board.White, g))
	assert.Negative(t, eval.Evaluate(b, board.Black, g))
}

func TestEvaluate_StalemateIsZero(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	g := game.NewState(b.Position())

	assert.Zero(t, eval.Evaluate(b, board.White, g))
}

func TestEvaluate_CheckmateFavorsTheMatingSide(t *testing.T) {
	b := newBoard(t, "8/8/8/8/8/6k1/6q1/6K1 w - - 0 1")
	g := game.NewState(b.Position())

	assert.Equal(t, board.MinScore, eval.Evaluate(b, board.White, g))
	assert.Equal(t, board.MaxScore, eval.Evaluate(b, board.Black, g))
}

func TestEvaluate_RepetitionIsZero(t *testing.T) {
	b := newBoard(t, fen.Initial)
	g := game.NewState(b.Position())

	shuffle := func() {
		require.True(t, b.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G1, To: board.F3}))
		require.True(t, b.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G8, To: board.F6}))
		require.True(t, b.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.F3, To: board.G1}))
		require.True(t, b.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.F6, To: board.G8}))
	}

	shuffle()
	shuffle()

	assert.Equal(t, board.Score(0), eval.Evaluate(b, b.Turn(), g))
}

func TestEvaluate_QueenAndKnightOutweighPassedPawn(t *testing.T) {
	// Black to move: queen + knight vs a passed pawn + king for White.
	b := newBoard(t, "8/8/1P2K3/8/2n5/1q6/8/5k2 b - - 0 1")
	g := game.NewState(b.Position())

	assert.Positive(t, eval.Evaluate(b, board.Black, g))
}

func TestEvaluate_ForcedEndgamePhaseIsDeterministic(t *testing.T) {
	b := newBoard(t, "8/8/8/4k3/8/8/8/4K2R w - - 0 1")
	g := &game.State{Phase: game.Endgame}

	// Just confirm this doesn't panic and produces a deterministic score given the
	// explicitly forced Endgame phase.
	s1 := eval.Evaluate(b, board.White, g)
	s2 := eval.Evaluate(b, board.White, g)
	assert.Equal(t, s1, s2)
}
