package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryPackRoundTrip(t *testing.T) {
	cases := []struct {
		tag        uint64
		generation uint32
		visits     uint32
		wins       int32
	}{
		{tag: 0x123456789a, generation: 0, visits: 0, wins: 0},
		{tag: 1, generation: MaxGeneration, visits: MaxVisits, wins: 536870911},
		{tag: tagMask, generation: 5000, visits: 2000000, wins: -536870912},
		{tag: 42, generation: 1, visits: 1, wins: -1},
	}
	for _, c := range cases {
		e := packEntry(c.tag, c.generation, c.visits, c.wins)
		assert.Equal(t, c.tag, e.tag())
		assert.Equal(t, c.generation, e.generation())
		assert.Equal(t, c.visits, e.visits())
		assert.Equal(t, c.wins, e.wins())
	}
}

func TestEntryEmpty(t *testing.T) {
	var e entry
	assert.True(t, e.empty())

	e = packEntry(1, 0, 0, 0)
	assert.False(t, e.empty())
}

func TestEntryWinsSignExtension(t *testing.T) {
	e := packEntry(1, 0, 10, -3)
	assert.Equal(t, int32(-3), e.wins())

	e = packEntry(1, 0, 10, 3)
	assert.Equal(t, int32(3), e.wins())
}
