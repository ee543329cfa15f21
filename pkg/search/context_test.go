package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextOverflowGuardPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IterationsPerMove = 2_000_000
	cfg.GenerationRange = 1 << 20 // grossly exceeds the 2^29 visit-field capacity when multiplied

	assert.Panics(t, func() {
		NewContext(cfg)
	})
}

func TestNewContextWithinBoundsDoesNotPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.IterationsPerMove = 2_000_000
	cfg.GenerationRange = 200
	cfg.TableBits = 8

	assert.NotPanics(t, func() {
		c := NewContext(cfg)
		assert.NotNil(t, c.Table())
		assert.NotNil(t, c.ZobristTable())
	})
}

func TestNewContextGenerationRangeOverflowPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IterationsPerMove = 1
	cfg.GenerationRange = MaxGeneration + 1

	assert.Panics(t, func() {
		NewContext(cfg)
	})
}
