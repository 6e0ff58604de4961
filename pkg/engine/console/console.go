// Package console contains a plain-text debugging driver for the engine: not a
// protocol a GUI understands, just enough to play and inspect games from a terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/engine"
	"github.com/negamax-engine/negamax/pkg/search"
	"github.com/seekerror/logw"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging: single-threaded, like the UCI
// driver, but with commands geared towards manual play and inspection rather than GUI
// integration.
type Driver struct {
	e   *engine.Engine
	out io.Writer
}

func NewDriver(e *engine.Engine, out io.Writer) *Driver {
	return &Driver{e: e, out: out}
}

func (d *Driver) Run(ctx context.Context, in <-chan string) {
	logw.Infof(ctx, "Console protocol initialized")

	d.println(fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author()))
	d.printBoard()

	for line := range in {
		if d.process(ctx, line) {
			return
		}
	}
	logw.Infof(ctx, "Input stream closed. Exiting")
}

func (d *Driver) process(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "reset", "r":
		// reset [<fenstring>] [moves ...]

		position := fen.Initial
		rest := args
		if len(args) >= 6 {
			position = strings.Join(args[0:6], " ")
			rest = args[6:]
		}
		if err := d.e.Reset(ctx, position); err != nil {
			d.println(fmt.Sprintf("invalid position: %v", line))
			break
		}
		if len(rest) > 0 && rest[0] == "moves" {
			for _, m := range rest[1:] {
				if err := d.e.Move(ctx, m); err != nil {
					d.println(fmt.Sprintf("invalid move %q: %v", m, err))
					break
				}
			}
		}
		d.printBoard()

	case "undo", "u":
		_ = d.e.TakeBack(ctx)
		d.printBoard()

	case "print", "p":
		d.printBoard()

	case "go", "think", "g":
		var opt search.Options
		if len(args) > 0 {
			if depth, err := strconv.Atoi(args[0]); err == nil {
				opt.DepthLimit = depth
			}
		}

		pv, err := d.e.ChooseMove(ctx, opt)
		if err != nil {
			d.println(fmt.Sprintf("search failed: %v", err))
			break
		}
		d.println(pv.String())
		d.printBoard()

	case "depth", "d":
		if len(args) > 0 {
			if depth, err := strconv.Atoi(args[0]); err == nil {
				d.e.SetDepth(depth)
			}
		}

	case "quit", "exit", "q":
		return true

	case "":
		// ignore empty command

	default:
		// Assume a move if not a recognized command.

		if err := d.e.Move(ctx, cmd); err != nil {
			d.println(fmt.Sprintf("invalid move: %q", cmd))
		} else {
			d.printBoard()
		}
	}

	return false
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	b := d.e.Board()
	p := b.Position()

	d.println("")
	d.println(files)
	d.println(horizontal)

	var sb strings.Builder
	sb.WriteString("8" + vertical)
	for i := board.ZeroSquare; i < board.NumSquares; i++ {
		if i != 0 && i%8 == 0 {
			d.println(sb.String())
			d.println(horizontal)

			sb.Reset()
			sb.WriteString((7 - i.Rank()).String())
			sb.WriteString(vertical)
		}

		if color, piece, ok := p.Square(board.NumSquares - i - 1); ok {
			sb.WriteString(printPiece(color, piece))
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(vertical)
	}
	d.println(sb.String())
	d.println(horizontal)
	d.println(files)
	d.println("")
	d.println(fmt.Sprintf("fen:    %v", d.e.Position()))
	d.println(fmt.Sprintf("result: %v, fullmoves: %v, hash: 0x%x", b.Result(), b.FullMoves(), b.Hash()))
	d.println("")
}

func printPiece(c board.Color, p board.Piece) string {
	if c == board.White {
		return strings.ToUpper(p.String())
	}
	return strings.ToLower(p.String())
}

func (d *Driver) println(line string) {
	_, _ = fmt.Fprintln(d.out, line)
}
