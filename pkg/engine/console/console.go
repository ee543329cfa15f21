// Package console implements a text console driver for playing and
// observing games against the MCTS engine, grounded on the interactive
// command loop the teacher used for its chess console protocol.
package console

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sigurdsson/brandub/pkg/board"
	"github.com/sigurdsson/brandub/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Mode selects who controls each side for the game loop.
type Mode int

const (
	// HumanVsHuman asks for a move from the console on every turn.
	HumanVsHuman Mode = iota
	// HumanVsBot lets the engine play the bot side and asks the console for the other.
	HumanVsBot
	// BotVsRandom lets the engine play the bot side against uniformly random moves.
	BotVsRandom
	// BotVsBot lets the engine play both sides.
	BotVsBot
)

// Driver runs an interactive or unattended game loop over an engine.Engine,
// streaming board renderings and prompts to out and reading moves from in.
type Driver struct {
	iox.AsyncCloser

	e    *engine.Engine
	mode Mode
	side board.Color // the engine's side, for HumanVsBot and BotVsRandom
	rnd  *rand.Rand

	out chan<- string
}

// NewDriver starts the console loop in the background and returns the driver
// alongside the output line channel.
func NewDriver(ctx context.Context, e *engine.Engine, mode Mode, botSide board.Color, seed int64, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		mode:        mode,
		side:        botSide,
		rnd:         rand.New(rand.NewSource(seed)),
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized: mode=%v, bot=%v", d.mode, d.side)

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	var moves uint64
	for {
		if r := d.e.Result(); r != board.None {
			d.announceResult(r)
			logw.Infof(ctx, "Game over after %v moves: %v", moves, r)
			return
		}

		if d.engineToMove() {
			d.out <- "thinking..."
			m := d.e.ComputerMove(ctx)
			d.out <- fmt.Sprintf("move %v", m)
			d.printBoard()
			moves++
			continue
		}

		if d.mode == BotVsRandom {
			m, err := d.randomMove(ctx)
			if err != nil {
				d.out <- fmt.Sprintf("error: %v", err)
				return
			}
			d.out <- fmt.Sprintf("random move %v", m)
			d.printBoard()
			moves++
			continue
		}

		d.out <- "your move (sr sc er ec)"

		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			line = strings.TrimSpace(line)
			switch strings.ToLower(line) {
			case "quit", "exit", "q":
				return
			case "print", "p":
				d.printBoard()
			case "":
				// ignore empty line
			default:
				if err := d.e.Move(ctx, line); err != nil {
					d.out <- fmt.Sprintf("invalid move: %v", err)
					continue
				}
				d.printBoard()
				moves++
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// engineToMove reports whether the engine itself should choose the next move.
func (d *Driver) engineToMove() bool {
	switch d.mode {
	case BotVsBot:
		return true
	case HumanVsBot, BotVsRandom:
		return d.e.Side() == d.side
	default:
		return false
	}
}

func (d *Driver) randomMove(ctx context.Context) (board.Move, error) {
	moves := d.e.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("no legal moves")
	}
	m := moves[d.rnd.Intn(len(moves))]
	if err := d.e.Move(ctx, m.String()); err != nil {
		return board.Move{}, err
	}
	return m, nil
}

func (d *Driver) announceResult(r board.Result) {
	switch r {
	case board.WhiteWin:
		d.out <- "White wins!"
	case board.BlackWin:
		d.out <- "Black wins!"
	case board.DrawResult:
		d.out <- "Draw."
	}
}

func (d *Driver) printBoard() {
	d.out <- ""
	for _, line := range strings.Split(d.e.Render(), "\n") {
		d.out <- line
	}
	d.out <- fmt.Sprintf("result: %v", d.e.Result())
	d.out <- ""
}

func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "human-vs-human"
	case HumanVsBot:
		return "human-vs-bot"
	case BotVsRandom:
		return "bot-vs-random"
	case BotVsBot:
		return "bot-vs-bot"
	default:
		return "?"
	}
}

// ParseMode parses a mode flag value ("hvh", "hvb", "bvr", "bvb").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "hvh", "human-vs-human":
		return HumanVsHuman, nil
	case "hvb", "human-vs-bot":
		return HumanVsBot, nil
	case "bvr", "bot-vs-random":
		return BotVsRandom, nil
	case "bvb", "bot-vs-bot":
		return BotVsBot, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
