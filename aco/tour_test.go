// White-box tests for the tour helpers: the wrap-around length convention
// against a hand-summed fixture.
package aco

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTourLength_WrapAroundConvention walks the fixture tour 0→1→2→3(→0)
// and compares against distances summed by hand, closing edge included.
func TestTourLength_WrapAroundConvention(t *testing.T) {
	cities := testCities()
	c, err := NewColony(cities, DefaultOptions())
	require.NoError(t, err)

	// Summed in the implementation's edge order: the i==0 term pairs the
	// last city with the first, so the return leg 3→0 comes first.
	path := []int{0, 1, 2, 3}
	want := math.Hypot(8-0, 1-0) + // 3→0, the implicit return leg
		math.Hypot(2-0, 3-0) + // 0→1
		math.Hypot(5-2, 5-3) + // 1→2
		math.Hypot(8-5, 1-5) // 2→3

	assert.Equal(t, want, tourLength(c.dist, path))
}

// TestTourLength_RotationInvariant verifies that rotating a closed tour does
// not change its length.
func TestTourLength_RotationInvariant(t *testing.T) {
	c, err := NewColony(testCities(), DefaultOptions())
	require.NoError(t, err)

	a := tourLength(c.dist, []int{0, 1, 2, 3})
	b := tourLength(c.dist, []int{2, 3, 0, 1})
	assert.InDelta(t, a, b, 1e-12)
}

// TestTourLength_ReversalInvariant verifies direction does not matter for a
// symmetric distance matrix.
func TestTourLength_ReversalInvariant(t *testing.T) {
	c, err := NewColony(testCities(), DefaultOptions())
	require.NoError(t, err)

	a := tourLength(c.dist, []int{0, 1, 2, 3})
	b := tourLength(c.dist, []int{3, 2, 1, 0})
	assert.InDelta(t, a, b, 1e-12)
}
