// Package aco_test exercises the public ACO API.
// Focus: option/city validation sentinels, tour validity of results,
// determinism, and the zero-iteration contract.
package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmopt/aco"
)

// fourCities is the canonical teaching instance used across the tests.
func fourCities() []aco.City {
	return []aco.City{{X: 0, Y: 0}, {X: 2, Y: 3}, {X: 5, Y: 5}, {X: 8, Y: 1}}
}

// manualTourLength recomputes a closed-tour length from first principles,
// independently of the package internals.
func manualTourLength(cities []aco.City, path []int) float64 {
	var (
		sum float64
		n   = len(path)
	)
	for i := 0; i < n; i++ {
		a := cities[path[(i-1+n)%n]]
		b := cities[path[i]]
		sum += math.Hypot(a.X-b.X, a.Y-b.Y)
	}

	return sum
}

// TestNewColony_OptionValidation checks that each invalid field maps to its
// dedicated sentinel.
func TestNewColony_OptionValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*aco.Options)
		want   error
	}{
		{"zero ants", func(o *aco.Options) { o.Ants = 0 }, aco.ErrBadAntCount},
		{"negative iterations", func(o *aco.Options) { o.Iterations = -1 }, aco.ErrBadIterations},
		{"negative alpha", func(o *aco.Options) { o.Alpha = -1 }, aco.ErrBadExponent},
		{"NaN beta", func(o *aco.Options) { o.Beta = math.NaN() }, aco.ErrBadExponent},
		{"rho at one", func(o *aco.Options) { o.Rho = 1 }, aco.ErrBadEvaporation},
		{"negative rho", func(o *aco.Options) { o.Rho = -0.1 }, aco.ErrBadEvaporation},
		{"negative deposit", func(o *aco.Options) { o.Deposit = -5 }, aco.ErrBadDeposit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := aco.DefaultOptions()
			tc.mutate(&opts)
			_, err := aco.NewColony(fourCities(), opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewColony_CityValidation covers the degenerate inputs that would
// otherwise surface later as sampling faults.
func TestNewColony_CityValidation(t *testing.T) {
	opts := aco.DefaultOptions()

	_, err := aco.NewColony(nil, opts)
	assert.ErrorIs(t, err, aco.ErrTooFewCities)

	_, err = aco.NewColony([]aco.City{{X: 1, Y: 1}}, opts)
	assert.ErrorIs(t, err, aco.ErrTooFewCities)

	_, err = aco.NewColony([]aco.City{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}}, opts)
	assert.ErrorIs(t, err, aco.ErrBadCoordinate)

	_, err = aco.NewColony([]aco.City{{X: 0, Y: 0}, {X: 2, Y: 3}, {X: 2, Y: 3}}, opts)
	assert.ErrorIs(t, err, aco.ErrCoincidentCities)
}

// TestRun_ReturnsValidTour checks the central contract: the best path is a
// permutation of the city indices and its distance matches an independent
// recomputation.
func TestRun_ReturnsValidTour(t *testing.T) {
	cities := fourCities()
	opts := aco.DefaultOptions()
	opts.Seed = 17

	c, err := aco.NewColony(cities, opts)
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	require.NoError(t, aco.ValidatePermutation(res.Path, len(cities)))
	assert.Equal(t, manualTourLength(cities, res.Path), res.Distance,
		"reported distance must match the wrap-around edge sum")
	assert.Greater(t, res.Distance, 0.0)
}

// TestRun_Deterministic verifies exact replay under equal seeds and distinct
// streams under distinct seeds.
func TestRun_Deterministic(t *testing.T) {
	run := func(seed int64) aco.Result {
		opts := aco.DefaultOptions()
		opts.Seed = seed
		c, err := aco.NewColony(fourCities(), opts)
		require.NoError(t, err)
		res, err := c.Run()
		require.NoError(t, err)

		return res
	}

	a := run(42)
	b := run(42)
	assert.Equal(t, a, b, "same seed must reproduce the run bit-for-bit")
}

// TestRun_ZeroIterations confirms the silent degenerate contract: no tours
// are built and the initial best is returned untouched.
func TestRun_ZeroIterations(t *testing.T) {
	opts := aco.DefaultOptions()
	opts.Iterations = 0

	c, err := aco.NewColony(fourCities(), opts)
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Distance, 1))
}

// TestValidatePermutation_PublicContract spot-checks the exported helper.
func TestValidatePermutation_PublicContract(t *testing.T) {
	assert.NoError(t, aco.ValidatePermutation([]int{2, 0, 1, 3}, 4))
	assert.ErrorIs(t, aco.ValidatePermutation([]int{0, 1, 2}, 4), aco.ErrDimensionMismatch)
	assert.ErrorIs(t, aco.ValidatePermutation([]int{0, 0, 1, 2}, 4), aco.ErrDimensionMismatch)
	assert.ErrorIs(t, aco.ValidatePermutation([]int{0, 1, 2, 4}, 4), aco.ErrDimensionMismatch)
	assert.ErrorIs(t, aco.ValidatePermutation(nil, 0), aco.ErrDimensionMismatch)
}
