// Package aco - tour utilities.
//
// This file contains compact, allocation-conscious helpers that operate on
// tour structure (city index sequences) and tour length. They are side-effect
// free and usable both by the solver and by callers inspecting results.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time, at most O(n) space.
package aco

// ValidatePermutation checks that path is a permutation of {0..n-1} of
// length n, i.e. a complete tour visiting every city exactly once.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(path []int, n int) error {
	if n <= 0 || len(path) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = path[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// So does a repeated city.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// tourLength sums the distances along the closed tour described by path.
// Edges are indexed as path[i-1]→path[i] for i in 0..n-1: the i==0 term
// pairs the last element with the first, so the wrap-around edge is always
// included without storing the return leg.
//
// Callers guarantee path is a permutation over the matrix order.
//
// Complexity: O(n) time, O(1) space.
func tourLength(dist [][]float64, path []int) float64 {
	var (
		sum  float64
		prev int
		i    int
		n    = len(path)
	)
	for i = 0; i < n; i++ {
		prev = path[(i-1+n)%n]
		sum += dist[prev][path[i]]
	}

	return sum
}
