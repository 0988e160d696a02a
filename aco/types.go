// Package aco - core types, sentinel errors and configuration.
//
// This file defines the City value, the Options struct with its defaults,
// and every error the package may return. Solvers return only these
// sentinels; callers can match them with errors.Is.
package aco

import "errors"

// Sentinel errors returned by the ACO implementation.
var (
	// ErrTooFewCities indicates fewer than two cities; no tour exists.
	ErrTooFewCities = errors.New("aco: at least two cities are required")

	// ErrBadCoordinate indicates a NaN or infinite city coordinate.
	ErrBadCoordinate = errors.New("aco: city coordinates must be finite")

	// ErrCoincidentCities indicates two distinct cities at the same point.
	// A zero distance would make the visibility term 1/d infinite and break
	// the sampling distribution, so it is rejected at construction.
	ErrCoincidentCities = errors.New("aco: two cities share the same coordinates")

	// ErrBadAntCount indicates a non-positive ant count.
	ErrBadAntCount = errors.New("aco: ant count must be positive")

	// ErrBadIterations indicates a negative iteration count.
	// Zero is allowed and returns the initial (empty) best unchanged.
	ErrBadIterations = errors.New("aco: iteration count must be non-negative")

	// ErrBadExponent indicates a negative or non-finite Alpha or Beta.
	ErrBadExponent = errors.New("aco: alpha and beta must be finite and non-negative")

	// ErrBadEvaporation indicates Rho outside [0,1).
	ErrBadEvaporation = errors.New("aco: evaporation rate must be in [0,1)")

	// ErrBadDeposit indicates a negative or non-finite deposit constant.
	ErrBadDeposit = errors.New("aco: deposit constant must be finite and non-negative")

	// ErrNoReachableCity indicates that every unvisited candidate scored
	// zero during next-city sampling, so no probability distribution exists.
	// Opt into Options.UniformFallback to recover with a uniform pick.
	ErrNoReachableCity = errors.New("aco: all candidate cities have zero desirability")

	// ErrDimensionMismatch indicates a path whose shape does not match the
	// city count (wrong length, out-of-range index, or repeated city).
	ErrDimensionMismatch = errors.New("aco: path is not a permutation of the city indices")
)

// City is an immutable 2-D coordinate; cities are identified by their index
// in the slice handed to NewColony.
type City struct {
	X float64
	Y float64
}

// Options configures an ACO run.
//
// Ants            - tours constructed per iteration (must be > 0).
// Iterations      - fixed number of construct/update rounds (must be >= 0).
// Alpha           - pheromone influence exponent.
// Beta            - inverse-distance (visibility) influence exponent.
// Rho             - evaporation rate in [0,1); every pheromone entry is
//                   multiplied by (1−Rho) once per iteration.
// Deposit         - pheromone constant; each tour adds Deposit/length to
//                   every directed edge it traversed.
// Seed            - RNG seed; 0 selects the fixed default deterministic stream.
// UniformFallback - recover from an all-zero sampling distribution with a
//                   uniform pick among unvisited cities instead of failing
//                   with ErrNoReachableCity.
type Options struct {
	Ants            int
	Iterations      int
	Alpha           float64
	Beta            float64
	Rho             float64
	Deposit         float64
	Seed            int64
	UniformFallback bool
}

// DefaultOptions returns the classic textbook configuration: 10 ants,
// 100 iterations, alpha=1, beta=2, rho=0.1, deposit=100, strict sampling,
// on the default deterministic stream (Seed=0).
func DefaultOptions() Options {
	return Options{
		Ants:            10,
		Iterations:      100,
		Alpha:           1,
		Beta:            2,
		Rho:             0.1,
		Deposit:         100,
		Seed:            0,
		UniformFallback: false,
	}
}

// Result holds the outcome of an ACO run.
type Result struct {
	// Path is the best tour found: a permutation of 0..n-1 in visiting
	// order. The closing edge back to Path[0] is implicit. Nil when no
	// iteration ran.
	Path []int

	// Distance is the total length of Path including the wrap-around edge;
	// +Inf when no iteration ran.
	Distance float64
}
