package search

import (
	"context"
	"fmt"

	"github.com/sigurdsson/brandub/pkg/board"
	"github.com/seekerror/logw"
)

// MaxVisits is the largest visit count representable in the 29-bit visits
// field. Backpropagation must never push a node's visits past this.
const MaxVisits = (uint32(1) << VisitsBits) - 1

// MaxGeneration is the largest generation value representable in the 29-bit
// generation field, after which the counter would wrap.
const MaxGeneration = (uint32(1) << GenBits) - 1

// Table is the fixed-capacity, bit-packed transposition table: a direct
// mapped array of 2^K four-way buckets, retained across moves within a
// game (spec.md §3/§4.3). The zero-initialised array doubles as the
// "all slots empty" starting state: tag == 0 marks a slot unclaimed.
type Table struct {
	buckets    []bucket
	bucketBits uint
	mask       uint64

	newWrites, goodCollisions, badCollisions uint64
}

// NewTranspositionTable allocates a table of 2^k buckets (the reference
// design uses k=24, i.e. 16M buckets / 64M entries / 1GiB). The array is
// heap-allocated once and zero-initialised, matching the teacher's
// allocate-once TT idiom.
func NewTranspositionTable(ctx context.Context, k uint) *Table {
	n := uint64(1) << k
	logw.Infof(ctx, "Allocating TT with 2^%v=%v buckets (%v bytes)", k, n, n*uint64(bucketEntries)*16)

	return &Table{
		buckets:    make([]bucket, n),
		bucketBits: k,
		mask:       n - 1,
	}
}

// index returns the bucket index for hash: the low bucketBits bits.
func (t *Table) index(hash board.ZobristHash) uint64 {
	return uint64(hash) & t.mask
}

func (t *Table) tag(hash board.ZobristHash) uint64 {
	return tagOf(hash, t.bucketBits)
}

// Lookup returns the (generation, visits, wins) triple stored for hash, if
// present.
func (t *Table) Lookup(hash board.ZobristHash) (generation uint32, visits uint32, wins int32, ok bool) {
	b := &t.buckets[t.index(hash)]
	_, e, found := b.find(t.tag(hash))
	if !found {
		return 0, 0, 0, false
	}
	return e.generation(), e.visits(), e.wins(), true
}

// Insert claims a slot for hash at the given generation with zero
// visits/wins, per the age-based policy of spec.md §4.3. bound is the
// current generation bound B; entries older than it are considered stale
// and preferentially overwritten. Diagnostics counters are updated
// accordingly.
func (t *Table) Insert(hash board.ZobristHash, generation uint32, bound uint32) {
	b := &t.buckets[t.index(hash)]
	switch b.insert(t.tag(hash), generation, bound) {
	case emptySlotWrite:
		t.newWrites++
	case goodCollision:
		t.goodCollisions++
	case badCollision:
		t.badCollisions++
	}
}

// Update adds delta visits and delta wins to hash's entry and stamps it
// with the current generation, per spec.md §4.3's add_visits/add_wins. The
// entry must already exist (via a prior Insert); if it doesn't (a TT
// eviction raced ahead of us under the single-threaded model this should
// never happen, but degrade gracefully), Update is a no-op.
func (t *Table) Update(hash board.ZobristHash, generation uint32, deltaVisits uint32, deltaWins int32) {
	b := &t.buckets[t.index(hash)]
	idx, e, found := b.find(t.tag(hash))
	if !found {
		return
	}

	visits := e.visits() + deltaVisits
	if visits > MaxVisits {
		visits = MaxVisits
	}
	wins := e.wins() + deltaWins

	b.slots[idx] = packEntry(e.tag(), generation, visits, wins)
}

// Size returns the table's footprint in bytes.
func (t *Table) Size() uint64 {
	return uint64(len(t.buckets)) * bucketEntries * 16
}

// Used returns the fraction [0;1] of entries across the table that are
// non-empty.
func (t *Table) Used() float64 {
	var used uint64
	for i := range t.buckets {
		for _, e := range t.buckets[i].slots {
			if !e.empty() {
				used++
			}
		}
	}
	return float64(used) / float64(len(t.buckets)*bucketEntries)
}

// Stats returns the running new-write/good-collision/bad-collision
// diagnostic counters, per spec.md §3's "counters for diagnostics" line.
func (t *Table) Stats() (newWrites, goodCollisions, badCollisions uint64) {
	return t.newWrites, t.goodCollisions, t.badCollisions
}

func (t *Table) String() string {
	return fmt.Sprintf("TT[%v buckets, %v bytes @ %v%% used]", len(t.buckets), t.Size(), int(100*t.Used()))
}
