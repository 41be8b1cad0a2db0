// Package breakpoint implements the Breakpoint Set (spec.md §4.4, C4):
// the offsets at which the VM must halt before executing, re-registered
// with the underlying VM on every Reset.
package breakpoint

import (
	bloomfilter "github.com/holiman/bloomfilter/v2"
	mapset "github.com/deckarep/golang-set"
)

// Set tracks breakpoint offsets. A bloom filter sits in front of the
// exact mapset.Set as a fast negative pre-check on the hot per-step
// path (Stepping Engine consults this once per instruction); the bloom
// filter can only say "definitely not present", so every positive hit
// still confirms against the exact set before reporting a break.
type Set struct {
	exact mapset.Set
	bloom *bloomfilter.Filter
}

// New creates an empty breakpoint set.
func New() *Set {
	// 1024 slots / 4 hash functions comfortably covers a debug session's
	// breakpoint count without meaningful false-positive pressure; a
	// false positive only costs one extra exact-set lookup, never a
	// wrong answer.
	f, _ := bloomfilter.New(1024, 4)
	return &Set{exact: mapset.NewSet(), bloom: f}
}

// SetBreakpoint inserts or removes offset, per spec.md §4.4
// ("set_breakpoint(offset, enabled: bool)... no deduplication beyond
// set semantics; no validation of offset bounds").
func (s *Set) SetBreakpoint(offset uint32, enabled bool) {
	if enabled {
		s.exact.Add(offset)
		s.bloom.Add(bloomKey(offset))
		return
	}
	s.exact.Remove(offset)
	// Breakpoints are rare relative to step count; a stale bloom entry
	// only costs an extra exact-set lookup on a false positive, so the
	// filter is never rebuilt on removal.
}

// Contains reports whether offset is a registered breakpoint.
func (s *Set) Contains(offset uint32) bool {
	if !s.bloom.Contains(bloomKey(offset)) {
		return false
	}
	return s.exact.Contains(offset)
}

// All returns every registered breakpoint offset, in no particular
// order — used by Reset to re-register each one with the VM (spec.md
// §4.4).
func (s *Set) All() []uint32 {
	out := make([]uint32, 0, s.exact.Cardinality())
	for v := range s.exact.Iter() {
		out = append(out, v.(uint32))
	}
	return out
}

func bloomKey(offset uint32) bloomfilter.Key {
	// Spread the offset across the filter's 64-bit key space instead of
	// using it directly, so sequential breakpoints (the common case,
	// set one at a time while stepping through a function) don't all
	// land in the same few filter buckets.
	k := uint64(offset)
	k ^= k << 21
	k ^= k >> 35
	k ^= k << 4
	return bloomfilter.Key(k)
}
