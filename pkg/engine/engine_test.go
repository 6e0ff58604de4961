package engine_test

import (
	"context"
	"testing"

	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/engine"
	"github.com/negamax-engine/negamax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(context.Background(), "test", "test-suite", engine.WithOptions(engine.Options{Depth: 2}))
}

func TestEngine_ResetToInitialPosition(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestEngine_MoveAndTakeBack(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.Move(context.Background(), "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())

	require.NoError(t, e.TakeBack(context.Background()))
	assert.Equal(t, fen.Initial, e.Position())
}

func TestEngine_MoveRejectsIllegalMove(t *testing.T) {
	e := newEngine(t)
	assert.Error(t, e.Move(context.Background(), "e2e5"))
}

func TestEngine_TakeBackWithNoHistoryFails(t *testing.T) {
	e := newEngine(t)
	assert.Error(t, e.TakeBack(context.Background()))
}

func TestEngine_ChooseMovePlaysAMove(t *testing.T) {
	e := newEngine(t)

	pv, err := e.ChooseMove(context.Background(), search.Options{DepthLimit: 1})
	require.NoError(t, err)
	require.NotEmpty(t, pv.Moves)

	assert.NotEqual(t, fen.Initial, e.Position())
}

func TestEngine_ResetToCustomPositionRejectsMalformedFEN(t *testing.T) {
	e := newEngine(t)
	assert.Error(t, e.Reset(context.Background(), "not-a-fen"))
}
