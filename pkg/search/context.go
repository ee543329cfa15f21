package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/sigurdsson/brandub/pkg/board"
)

// DefaultUCBConstant is the reference exploration constant C = sqrt(2).
var DefaultUCBConstant = math.Sqrt2

// Config holds construction-time engine configuration (spec.md §6):
// the PRNG seed, iteration budget, generation window, and UCB constant.
// Immutable after NewContext validates it.
type Config struct {
	Seed             int64
	IterationsPerMove uint32
	GenerationRange   uint32
	UCBConstant       float64
	TableBits         uint // log2(number of TT buckets); 24 is the reference value
}

// DefaultConfig returns a Config with the reference TT size (2^24 buckets)
// and UCB constant, which callers should override Seed/IterationsPerMove/
// GenerationRange for.
func DefaultConfig() Config {
	return Config{
		UCBConstant: DefaultUCBConstant,
		TableBits:   24,
	}
}

// Context is the search driver's exclusive owner of the transposition
// table, the Zobrist table, and the generation counters, for the life of
// the process (spec.md §3, "Ownership"). One Context is built per engine
// instance; it is never shared between concurrently-running engines.
type Context struct {
	cfg Config

	zt *board.ZobristTable
	tt *Table

	generation      uint32
	generationBound uint32

	treeRand *rand.Rand // selection/expansion tie-breaking
	playRand *rand.Rand // simulation playouts, independent per spec.md §5
}

// NewContext validates cfg's overflow invariant and builds a Context.
// Panics (fatal at construction, per spec.md §7's "Overflow guard") if
// IterationsPerMove * GenerationRange would overflow the 29-bit visits
// field: a TT entry's visit count is bounded by how many iterations can
// accumulate against it before its generation falls outside the window and
// it becomes eligible for overwrite, which is at most IterationsPerMove
// visits per generation across GenerationRange generations.
func NewContext(cfg Config) *Context {
	if cfg.UCBConstant == 0 {
		cfg.UCBConstant = DefaultUCBConstant
	}
	if cfg.TableBits == 0 {
		cfg.TableBits = 24
	}

	maxVisitsOverGenerationWindow := uint64(cfg.IterationsPerMove) * uint64(cfg.GenerationRange)
	if maxVisitsOverGenerationWindow >= uint64(1)<<VisitsBits {
		panic(fmt.Sprintf("search: overflow guard: iterations_per_move=%v * generation_range=%v = %v exceeds 2^%v visit-field capacity",
			cfg.IterationsPerMove, cfg.GenerationRange, maxVisitsOverGenerationWindow, VisitsBits))
	}
	if cfg.GenerationRange > MaxGeneration {
		panic(fmt.Sprintf("search: overflow guard: generation_range=%v exceeds 2^%v generation-field capacity", cfg.GenerationRange, GenBits))
	}

	return &Context{
		cfg:      cfg,
		zt:       board.NewZobristTable(cfg.Seed),
		tt:       NewTranspositionTable(context.Background(), cfg.TableBits),
		treeRand: rand.New(rand.NewSource(cfg.Seed)),
		playRand: rand.New(rand.NewSource(cfg.Seed + 1)),
	}
}

func (c *Context) ZobristTable() *board.ZobristTable {
	return c.zt
}

func (c *Context) Table() *Table {
	return c.tt
}

// Generation returns the current top-level search generation G.
func (c *Context) Generation() uint32 {
	return c.generation
}

// advanceGeneration bumps G by one, per spec.md §4.3; once G exceeds
// GenerationRange, the bound B is bumped in lockstep.
func (c *Context) advanceGeneration() {
	c.generation++
	if c.generation > c.cfg.GenerationRange {
		c.generationBound = c.generation - c.cfg.GenerationRange
	}
}
