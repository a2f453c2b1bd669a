// monarch is a UCI/console chess engine implementing iterative-deepening
// alpha-beta search with quiescence and a transposition table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidlabs/monarch/pkg/board"
	"github.com/corvidlabs/monarch/pkg/board/fen"
	"github.com/corvidlabs/monarch/pkg/board/svg"
	"github.com/corvidlabs/monarch/pkg/engine"
	"github.com/corvidlabs/monarch/pkg/engine/console"
	"github.com/corvidlabs/monarch/pkg/engine/uci"
	"github.com/corvidlabs/monarch/pkg/eval"
	"github.com/corvidlabs/monarch/pkg/search"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Uint("depth", 0, "Search depth limit (0 for no limit)")
	hash   = flag.Uint("hash", 64, "Transposition table size in MB (0 to disable)")
	noise  = flag.Uint("noise", 10, "Evaluation noise in centipawns (0 if deterministic)")
	svgOut = flag.String("svg", "", "Dump the current position as an SVG diagram to this file and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: monarch [options]

MONARCH is a UCI/console chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *svgOut != "" {
		dumpSVG(ctx, *svgOut)
		return
	}

	s := search.AlphaBeta{Quiet: search.Quiescence{Eval: eval.Standard{}}}
	e := engine.New(ctx, "monarch", "corvidlabs", s,
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise}),
		engine.WithTable(search.NewTranspositionTable),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "protocol not supported")
	}
}

// dumpSVG renders the standard starting position to path, for diagnostic
// use outside of a running engine session.
func dumpSVG(ctx context.Context, path string) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(zt, fen.Initial)
	if err != nil {
		logw.Exitf(ctx, "invalid position: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		logw.Exitf(ctx, "cannot create %v: %v", path, err)
	}
	defer f.Close()

	svg.Render(f, b.Position())
}
