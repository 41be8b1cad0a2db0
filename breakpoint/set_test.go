package breakpoint

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBreakpointAndContains(t *testing.T) {
	s := New()
	require.False(t, s.Contains(10))

	s.SetBreakpoint(10, true)
	require.True(t, s.Contains(10))
	require.False(t, s.Contains(11))
}

func TestSetBreakpointDisable(t *testing.T) {
	s := New()
	s.SetBreakpoint(10, true)
	s.SetBreakpoint(10, false)
	require.False(t, s.Contains(10))
}

func TestAllReturnsEveryRegisteredOffset(t *testing.T) {
	s := New()
	s.SetBreakpoint(1, true)
	s.SetBreakpoint(5, true)
	s.SetBreakpoint(9, true)
	s.SetBreakpoint(5, false)

	got := s.All()
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Equal(t, []uint32{1, 9}, got)
}

func TestContainsNeverFalseNegatives(t *testing.T) {
	s := New()
	for _, off := range []uint32{0, 1, 2, 100, 1000, 65535} {
		s.SetBreakpoint(off, true)
	}
	for _, off := range []uint32{0, 1, 2, 100, 1000, 65535} {
		require.True(t, s.Contains(off))
	}
	// A bloom filter can false-positive, never false-negative: every
	// offset actually registered must always report present.
}
