package book_test

import (
	"testing"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	moves, err := book.ParseLine("1. e4 e5 2. Nf3 Nc6 3. Bb5")
	require.NoError(t, err)
	require.Len(t, moves, 5)

	assert.Equal(t, board.Pawn, moves[0].Piece)
	assert.Equal(t, board.Knight, moves[2].Piece)
	assert.Equal(t, board.Bishop, moves[4].Piece)
}

func TestParseLine_Castling(t *testing.T) {
	moves, err := book.ParseLine("1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O")
	require.NoError(t, err)
	require.Len(t, moves, 7)
	assert.Equal(t, board.KingSideCastle, moves[6].Type)
}

func TestBook_InsertDescendSuggestIsExhausted(t *testing.T) {
	lines, err := book.ParseLines([]string{
		"1. d4 Nf6 2. c4 e6",
		"1. d4 d5 2. c4 e6",
		"1. d4 d5 2. c4 Nc6",
	})
	require.NoError(t, err)

	b := book.New()
	for _, line := range lines {
		b.Insert(line)
	}

	d4 := lines[0][0]
	require.True(t, b.ContainsChild(d4))
	require.True(t, b.Descend(d4))
	require.False(t, b.IsExhausted())

	suggestion, ok := b.Suggest()
	require.True(t, ok)
	assert.Equal(t, board.Knight, suggestion.Piece)

	require.True(t, b.Descend(lines[0][1]))
	require.True(t, b.Descend(lines[0][2]))
	require.True(t, b.Descend(lines[0][3]))
	assert.True(t, b.IsExhausted())
}

func TestBook_DescendUnknownMoveFails(t *testing.T) {
	b := book.New()
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)

	assert.False(t, b.ContainsChild(m))
	assert.False(t, b.Descend(m))
	assert.True(t, b.IsExhausted())
}
