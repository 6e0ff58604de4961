package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/negamax-engine/negamax/pkg/book"
	"github.com/negamax-engine/negamax/pkg/engine"
	"github.com/negamax-engine/negamax/pkg/engine/console"
	"github.com/negamax-engine/negamax/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var depth = flag.Int("depth", 4, "Default search depth limit (zero for unlimited, governed by deadline only)")

// openingLines is a small built-in opening book, compiled in as SAN movetext. A real
// deployment would load a much larger set; these lines exist so the book-probe step
// has something to exercise out of the box.
var openingLines = []string{
	"1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5",
	"1. e4 e5 2. Nf3 Nc6 3. Bb5",
	"1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6",
	"1. d4 d5 2. c4 e6 3. Nc3 Nf6",
	"1. d4 Nf6 2. c4 g6 3. Nc3 Bg7",
}

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: negamax [options]

negamax is a classical alpha-beta UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	b := book.New()
	for _, line := range openingLines {
		moves, err := book.ParseLine(line)
		if err != nil {
			logw.Errorf(ctx, "Invalid opening line %q, skipping: %v", line, err)
			continue
		}
		b.Insert(moves)
	}

	e := engine.New(ctx, "negamax", "negamax-engine",
		engine.WithOptions(engine.Options{Depth: *depth}),
		engine.WithBook(b),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		uci.NewDriver(e, os.Stdout).Run(ctx, in)

	case console.ProtocolName:
		console.NewDriver(e, os.Stdout).Run(ctx, in)

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
