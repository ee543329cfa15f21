package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sigurdsson/brandub/pkg/board"
	"github.com/sigurdsson/brandub/pkg/engine"
	"github.com/sigurdsson/brandub/pkg/engine/console"
	"github.com/sigurdsson/brandub/pkg/search"
	"github.com/seekerror/logw"
)

var (
	seed            = flag.Int64("seed", time.Now().UnixNano(), "Zobrist and search random seed")
	iterations      = flag.Uint("iterations", 50000, "MCTS iterations per move")
	generationRange = flag.Uint("generation-range", 200, "Transposition table generation window, in moves")
	ucb             = flag.Float64("ucb", search.DefaultUCBConstant, "UCB1 exploration constant")
	tableBits       = flag.Uint("table-bits", 24, "log2 of the transposition table bucket count")
	mode            = flag.String("mode", "hvb", "Game mode: hvh, hvb, bvr, bvb")
	botSide         = flag.String("bot-side", "W", "Side the engine plays in hvb/bvr mode: B or W")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: brandub [options]

BRANDUB is a Monte Carlo Tree Search engine for 7x7 Copenhagen Hnefatafl.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	m, err := console.ParseMode(*mode)
	if err != nil {
		flag.Usage()
		logw.Exitf(ctx, "Invalid mode: %v", err)
	}

	side := board.White
	if *botSide == "B" || *botSide == "b" {
		side = board.Black
	}

	cfg := search.Config{
		Seed:              *seed,
		IterationsPerMove: uint32(*iterations),
		GenerationRange:   uint32(*generationRange),
		UCBConstant:       *ucb,
		TableBits:         *tableBits,
	}
	e := engine.New(ctx, "brandub", "herohde", engine.WithConfig(cfg))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, m, side, *seed, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
