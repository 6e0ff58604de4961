// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/engine"
	"github.com/negamax-engine/negamax/pkg/search"
	"github.com/seekerror/logw"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an engine: single-threaded, reading one command,
// fully processing it (including a blocking search), writing its response, and
// looping. There is no background thread and no task queue. A `stop` sent during `go`
// does not end the search: it is read only after `go` has returned at its depth limit or
// deadline, and then just re-prints the last best move.
type Driver struct {
	e   *engine.Engine
	out io.Writer

	lastBestMove string // best move of the last completed search, for `stop` with nothing active
	lastPosition string // last position line (empty if no last position)
}

// NewDriver constructs a UCI driver writing responses to out.
func NewDriver(e *engine.Engine, out io.Writer) *Driver {
	return &Driver{e: e, out: out}
}

// Run processes commands from in until `quit` or in is exhausted. Exit code 0 on quit.
//
// The driver is only ever constructed after the caller has already consumed a leading
// "uci" line off the input to pick this protocol (see cmd/negamax), so that line never
// reaches process below. The handshake it would have triggered is therefore sent
// unconditionally here instead.
func (d *Driver) Run(ctx context.Context, in <-chan string) {
	logw.Infof(ctx, "UCI protocol initialized")

	d.println("id name %v", d.e.Name())
	d.println("id author %v", d.e.Author())
	d.println("uciok")

	for line := range in {
		if d.process(ctx, line) {
			return
		}
	}
	logw.Infof(ctx, "Input stream closed. Exiting")
}

// process handles a single line, returning true iff the driver should stop (quit).
func (d *Driver) process(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false // blank command: ignored
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "uci":
		// * uci
		//
		//	tell engine to use the uci (universal chess interface); this is sent once as
		//	the first command after program boot. The engine must identify itself with
		//	"id" and then send "uciok" to acknowledge uci mode.

		d.println("id name %v", d.e.Name())
		d.println("id author %v", d.e.Author())
		d.println("uciok")

	case "isready":
		// * isready
		//
		//	synchronizes the engine with the GUI: must always be answered with "readyok",
		//	even while the engine is calculating (single-threaded here, so there never is
		//	anything else in flight by the time this line is read).

		d.println("readyok")

	case "ucinewgame":
		// * ucinewgame
		//
		//	the next search will be from a different game: reinitialize root position to
		//	the standard start, clear history, reset game state, reload the opening book
		//	pointer.

		if err := d.e.Reset(ctx, fen.Initial); err != nil {
			logw.Errorf(ctx, "Reset failed: %v", err)
		}
		d.lastPosition = ""

	case "position":
		// * position [fen <fenstring> | startpos] [moves <m1> ... <mi>]
		//
		//	set up the position described in fenstring (or the standard start) on the
		//	internal board, then play the moves in order, pushing each resulting hash
		//	onto history.

		d.handlePosition(ctx, line, args)

	case "go":
		// * go [movetime <ms> | wtime ... btime ... | infinite]
		//
		//	compute a deadline and invoke ChooseMove; on return, apply the move internally
		//	(already done by ChooseMove) and print "bestmove <m>".

		d.handleGo(ctx, args)

	case "stop":
		// * stop
		//
		//	print the currently recorded best move if any. Not preemptive: in this
		//	single-threaded design, `go` has already fully returned by the time this line
		//	is read, so this only re-prints the last result.

		if d.lastBestMove != "" {
			d.println("bestmove %v", d.lastBestMove)
		}

	case "quit":
		// * quit
		//
		//	quit the program as soon as possible.

		return true

	case "debug", "setoption", "register", "ponderhit":
		// Accepted but inert: no tunable options, no registration, no pondering.

	default:
		logw.Warningf(ctx, "Unknown command %q", cmd)
	}

	return false
}

func (d *Driver) handlePosition(ctx context.Context, line string, args []string) {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of the same game: apply only the newly appended moves.

		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		d.applyMoves(ctx, rest)
		d.lastPosition = line
		return
	}

	position := fen.Initial
	rest := args
	if len(args) >= 7 && args[0] == "fen" {
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	} else if len(args) >= 1 && args[0] == "startpos" {
		rest = args[1:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Malformed FEN %q, dropping command", position)
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		d.applyMoves(ctx, strings.Join(rest[1:], " "))
	}
	d.lastPosition = line
}

func (d *Driver) applyMoves(ctx context.Context, moves string) {
	for _, m := range strings.Fields(moves) {
		if m == "moves" {
			continue
		}
		if err := d.e.Move(ctx, m); err != nil {
			logw.Errorf(ctx, "Illegal move %q after position, skipping: %v", m, err)
		}
	}
}

func (d *Driver) handleGo(ctx context.Context, args []string) {
	var opt search.Options

	var wtime, btime time.Duration
	var movetime time.Duration

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					opt.DepthLimit = n
				}
			}
		case "movetime":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					movetime = time.Duration(n) * time.Millisecond
				}
			}
		case "wtime":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					wtime = time.Duration(n) * time.Millisecond
				}
			}
		case "btime":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					btime = time.Duration(n) * time.Millisecond
				}
			}
		case "infinite":
			// No deadline: depth limit (if any) governs termination.
		default:
			// searchmoves, ponder, winc, binc, movestogo, mate, nodes: not supported, ignored.
		}
	}

	now := time.Now()
	switch {
	case movetime > 0:
		opt.Deadline = now.Add(movetime)
	case wtime > 0 || btime > 0:
		remaining := wtime
		if d.e.Board().Turn() == board.Black {
			remaining = btime
		}
		opt.Deadline = now.Add(remaining / 30)
	}

	pv, err := d.e.ChooseMove(ctx, opt)
	if err != nil {
		logw.Errorf(ctx, "ChooseMove failed: %v", err)
		d.println("bestmove 0000")
		d.lastBestMove = ""
		return
	}

	d.println("%v", printPV(pv))
	best := pv.BestMove().String()
	d.println("bestmove %v", best)
	d.lastBestMove = best
}

func (d *Driver) println(format string, args ...any) {
	logw.Debugf(context.Background(), ">> "+format, args...)
	_, _ = fmt.Fprintf(d.out, format+"\n", args...)
}

func printPV(pv search.PV) string {
	// "info depth 2 score cp 214 nodes 2124 time 1242 pv e2e4 e7e5 g1f3"

	parts := []string{"info", fmt.Sprintf("depth %v", pv.Depth)}
	parts = append(parts, fmt.Sprintf("score cp %v", int(pv.Score)))
	if pv.Nodes > 0 {
		parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	}
	if pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
	}
	if len(pv.Moves) > 0 {
		parts = append(parts, "pv", board.FormatMoves(pv.Moves, board.Move.String))
	}
	return strings.Join(parts, " ")
}
