package uci_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/negamax-engine/negamax/pkg/engine"
	"github.com/negamax-engine/negamax/pkg/engine/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lines ...string) string {
	t.Helper()

	e := engine.New(context.Background(), "test", "test-suite", engine.WithOptions(engine.Options{Depth: 1}))

	var out bytes.Buffer
	d := uci.NewDriver(e, &out)

	in := make(chan string, len(lines))
	for _, l := range lines {
		in <- l
	}
	close(in)

	d.Run(context.Background(), in)
	return out.String()
}

func TestUCI_Handshake(t *testing.T) {
	out := run(t, "uci", "quit")

	assert.Contains(t, out, "id name")
	assert.Contains(t, out, "id author")
	assert.Contains(t, out, "uciok")
}

func TestUCI_IsReady(t *testing.T) {
	out := run(t, "isready", "quit")
	assert.Contains(t, out, "readyok")
}

func TestUCI_GoReturnsBestMove(t *testing.T) {
	out := run(t, "position startpos", "go depth 1", "quit")

	require.Contains(t, out, "bestmove")
	var bestmove string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "bestmove") {
			bestmove = line
		}
	}
	require.NotEmpty(t, bestmove)
	assert.Len(t, strings.Fields(bestmove), 2)
}

func TestUCI_StopWithoutSearchPrintsNothing(t *testing.T) {
	out := run(t, "stop", "quit")
	assert.NotContains(t, out, "bestmove")
}

func TestUCI_QuitStopsTheLoop(t *testing.T) {
	// A line after quit must never be processed.
	out := run(t, "quit", "isready")
	assert.NotContains(t, out, "readyok")
}
