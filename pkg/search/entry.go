package search

import "github.com/sigurdsson/brandub/pkg/board"

// Bit layout of a 128-bit TT entry, split across two uint64 words (lo, hi)
// since Go has no native 128-bit integer:
//
//	lo: [ tag:40 | generation:24 ] -- low 40 bits tag, next 24 bits of generation
//	hi: [ generation:5 | visits:29 | wins:30 ]
//
// This is a struct-of-two-uint64 realization of the reference 40/29/29/30
// single-word layout (spec's "128 bits total"): tag and generation need 69
// bits combined, which we pack entirely into lo plus 5 spillover bits of hi,
// leaving visits and wins to occupy hi's remaining 59 bits untouched. The
// field widths (TagBits, GenBits, VisitsBits, WinsBits) are exactly the
// reference values; only the word boundary they straddle differs from a
// true single 128-bit integer, which Go cannot represent natively.
const (
	TagBits    = 40
	GenBits    = 29
	VisitsBits = 29
	WinsBits   = 30

	tagMask = (uint64(1) << TagBits) - 1
	genMask = (uint64(1) << GenBits) - 1

	genLoBits = 64 - TagBits // bits of generation that fit in lo after the tag
	genHiBits = GenBits - genLoBits

	genHiMask    = (uint64(1) << genHiBits) - 1
	visitsMask   = (uint64(1) << VisitsBits) - 1
	winsMask     = (uint64(1) << WinsBits) - 1
	winsSignBit  = uint64(1) << (WinsBits - 1)
	winsSignExtn = ^uint64(0) << WinsBits
)

// entry is one slot of a bucket: a 128-bit packed (tag, generation, visits,
// wins) tuple, stored as two machine words. The zero value is the "empty"
// sentinel (tag == 0).
type entry struct {
	lo, hi uint64
}

// tag extracts the 40-bit hash tag.
func (e entry) tag() uint64 {
	return e.lo & tagMask
}

// empty reports whether the entry's tag is zero, i.e. the slot has never
// been claimed.
func (e entry) empty() bool {
	return e.tag() == 0
}

// generation extracts the 29-bit generation counter.
func (e entry) generation() uint32 {
	lo := (e.lo >> TagBits) & ((uint64(1) << genLoBits) - 1)
	hi := e.hi & genHiMask
	return uint32(lo | (hi << genLoBits))
}

// visits extracts the 29-bit unsigned visit count.
func (e entry) visits() uint32 {
	return uint32((e.hi >> genHiBits) & visitsMask)
}

// wins extracts the 30-bit signed (two's-complement) win accumulator,
// sign-extended to a full int32.
func (e entry) wins() int32 {
	raw := (e.hi >> (genHiBits + VisitsBits)) & winsMask
	if raw&winsSignBit != 0 {
		raw |= winsSignExtn
	}
	return int32(raw)
}

// packEntry builds an entry from its logical fields, masking each to its
// field width (callers are expected to stay within bounds; construction-time
// overflow is instead guarded globally, see NewContext).
func packEntry(tag uint64, generation uint32, visits uint32, wins int32) entry {
	tag &= tagMask
	gen := uint64(generation) & genMask
	v := uint64(visits) & visitsMask
	w := uint64(uint32(wins)) & winsMask

	lo := tag | ((gen & ((uint64(1) << genLoBits) - 1)) << TagBits)
	hi := (gen >> genLoBits) | (v << genHiBits) | (w << (genHiBits + VisitsBits))
	return entry{lo: lo, hi: hi}
}

// tagOf returns the stored tag for a full state hash: the upper bits beyond
// the bucket index (log2(numBuckets) low bits), truncated to TagBits.
func tagOf(hash board.ZobristHash, bucketBits uint) uint64 {
	return (uint64(hash) >> bucketBits) & tagMask
}
