package search

// bucketEntries is the set-associativity of a bucket: four 128-bit (16-byte)
// entries fit in one 64-byte cache line.
const bucketEntries = 4

// bucket is a 64-byte-aligned group of four entries. Buckets never span
// cache lines: each entry is 16 bytes (two uint64 words), four entries is
// exactly 64 bytes.
type bucket struct {
	slots [bucketEntries]entry
}

// insertResult classifies the outcome of a bucket insert, per spec.md §4.3's
// four-way case split. Used for diagnostics counting only; the TT's
// observable behavior does not otherwise depend on it.
type insertResult uint8

const (
	alreadyPresent insertResult = iota
	emptySlotWrite
	goodCollision
	badCollision
)

// insert applies the age-based overwrite policy described in spec.md §4.3:
//
//  1. a slot already tagged for this hash is a no-op (the caller is
//     expected to re-read and update it via update, not insert again);
//  2. an empty slot is claimed outright;
//  3. failing that, among stale slots (generation < bound) the
//     least-visited is overwritten;
//  4. failing that (bucket full of fresh entries), the least-visited slot
//     in the whole bucket is overwritten regardless of staleness.
func (b *bucket) insert(tag uint64, generation uint32, bound uint32) insertResult {
	for i := range b.slots {
		if !b.slots[i].empty() && b.slots[i].tag() == tag {
			return alreadyPresent
		}
	}
	for i := range b.slots {
		if b.slots[i].empty() {
			b.slots[i] = packEntry(tag, generation, 0, 0)
			return emptySlotWrite
		}
	}

	staleIdx, staleVisits := -1, uint32(0)
	for i := range b.slots {
		if b.slots[i].generation() >= bound {
			continue
		}
		if staleIdx == -1 || b.slots[i].visits() < staleVisits {
			staleIdx, staleVisits = i, b.slots[i].visits()
		}
	}
	if staleIdx != -1 {
		b.slots[staleIdx] = packEntry(tag, generation, 0, 0)
		return goodCollision
	}

	leastIdx, leastVisits := 0, b.slots[0].visits()
	for i := 1; i < bucketEntries; i++ {
		if b.slots[i].visits() < leastVisits {
			leastIdx, leastVisits = i, b.slots[i].visits()
		}
	}
	b.slots[leastIdx] = packEntry(tag, generation, 0, 0)
	return badCollision
}

// find linearly scans the bucket for a slot matching tag, returning its
// index and the entry, or ok=false.
func (b *bucket) find(tag uint64) (int, entry, bool) {
	for i := range b.slots {
		if !b.slots[i].empty() && b.slots[i].tag() == tag {
			return i, b.slots[i], true
		}
	}
	return 0, entry{}, false
}
