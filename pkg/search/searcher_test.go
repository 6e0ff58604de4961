package search_test

import (
	"context"
	"testing"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/game"
	"github.com/negamax-engine/negamax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, f string) (*board.Board, *game.State) {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(f)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)
	b.Adjudicate(board.Result{Outcome: board.Undecided})

	g := game.NewState(pos)
	g.Phase = game.Middlegame // skip the opening book for pure search tests

	return b, g
}

func TestSearcher_MateInOne(t *testing.T) {
	b, g := newGame(t, "r1b1kb2/pppp1p1p/2n1p2n/8/3q2r1/8/PPPPKPP1/RNBQ1BNR b q - 0 11")

	s := search.NewSearcher(nil)
	pv := s.ChooseMove(context.Background(), b, g, search.Options{DepthLimit: 1})

	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, "d4e4", pv.Moves[0].String())
}

func TestSearcher_CapturesHangingQueen(t *testing.T) {
	b, g := newGame(t, "rn2k1nr/ppp2ppp/8/3pp3/8/P1P3qb/1PQPPP2/RNB1KB2 w Qkq - 0 8")

	s := search.NewSearcher(nil)
	pv := s.ChooseMove(context.Background(), b, g, search.Options{DepthLimit: 3})

	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, "f2g3", pv.Moves[0].String())
}

func TestSearcher_CapturesFreePawn(t *testing.T) {
	b, g := newGame(t, "1nbqkbnr/1ppppppp/8/8/r1PP4/8/PP2PPPP/R1BQKBNR b KQk - 0 1")

	s := search.NewSearcher(nil)
	pv := s.ChooseMove(context.Background(), b, g, search.Options{DepthLimit: 1})

	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, "a4c4", pv.Moves[0].String())
}

func TestSearcher_OppositeColorForcedMate(t *testing.T) {
	b, g := newGame(t, "3K4/7r/6r1/1k6/8/8/8/8 b - - 0 1")

	s := search.NewSearcher(nil)
	pv := s.ChooseMove(context.Background(), b, g, search.Options{DepthLimit: 3})

	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, "g6g8", pv.Moves[0].String())
}
