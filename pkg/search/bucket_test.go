package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketInsertEmptySlot(t *testing.T) {
	var b bucket
	res := b.insert(7, 1, 0)
	assert.Equal(t, emptySlotWrite, res)

	idx, e, ok := b.find(7)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, uint32(1), e.generation())
}

func TestBucketInsertAlreadyPresent(t *testing.T) {
	var b bucket
	b.insert(7, 1, 0)
	res := b.insert(7, 2, 0)
	assert.Equal(t, alreadyPresent, res)

	_, e, ok := b.find(7)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), e.generation()) // unchanged by the no-op insert
}

func TestBucketInsertFillsAllFourSlots(t *testing.T) {
	var b bucket
	for i := uint64(1); i <= bucketEntries; i++ {
		res := b.insert(i, 1, 0)
		assert.Equal(t, emptySlotWrite, res)
	}
	for i := uint64(1); i <= bucketEntries; i++ {
		_, _, ok := b.find(i)
		assert.True(t, ok)
	}
}

func TestBucketInsertStaleOverwrite(t *testing.T) {
	var b bucket
	for i := uint64(1); i <= bucketEntries; i++ {
		b.insert(i, 1, 0)
	}
	// Bump visits on every slot except tag=2, which stays the least-visited.
	b.slots[0] = packEntry(1, 1, 5, 0)
	b.slots[1] = packEntry(2, 1, 1, 0)
	b.slots[2] = packEntry(3, 1, 5, 0)
	b.slots[3] = packEntry(4, 1, 5, 0)

	// bound=2 makes generation=1 entries stale.
	res := b.insert(99, 2, 2)
	assert.Equal(t, goodCollision, res)

	_, _, ok := b.find(2)
	assert.False(t, ok, "least-visited stale entry should have been overwritten")
	_, e, ok := b.find(99)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), e.visits())
}

func TestBucketInsertBadCollisionWhenAllFresh(t *testing.T) {
	var b bucket
	b.slots[0] = packEntry(1, 5, 5, 0)
	b.slots[1] = packEntry(2, 5, 1, 0)
	b.slots[2] = packEntry(3, 5, 9, 0)
	b.slots[3] = packEntry(4, 5, 3, 0)

	// bound=1: generation=5 entries are all fresh (>= bound).
	res := b.insert(99, 6, 1)
	assert.Equal(t, badCollision, res)

	_, _, ok := b.find(2) // least-visited fresh entry
	assert.False(t, ok)
	_, _, ok = b.find(99)
	assert.True(t, ok)
}
