// Package pso - core types, sentinel errors and configuration.
//
// This file defines the Objective contract, the Options struct with its
// defaults, and every error the package may return. Solvers return only
// these sentinels; callers can match them with errors.Is.
package pso

import "errors"

// Sentinel errors returned by the PSO implementation.
var (
	// ErrNilObjective indicates that a nil objective function was supplied.
	ErrNilObjective = errors.New("pso: objective function is nil")

	// ErrBadDimension indicates a non-positive search-space dimension.
	ErrBadDimension = errors.New("pso: dimension must be positive")

	// ErrBadBounds indicates that the bounds are non-finite or that
	// LowerBound >= UpperBound, which leaves no interval to search.
	ErrBadBounds = errors.New("pso: bounds must be finite with lower < upper")

	// ErrBadSwarmSize indicates a non-positive particle count.
	ErrBadSwarmSize = errors.New("pso: particle count must be positive")

	// ErrBadIterations indicates a negative iteration count.
	// Zero is allowed and returns the seeded best untouched.
	ErrBadIterations = errors.New("pso: iteration count must be non-negative")

	// ErrBadCoefficient indicates a negative or non-finite inertia,
	// cognitive or social coefficient.
	ErrBadCoefficient = errors.New("pso: coefficients must be finite and non-negative")
)

// Objective scores a candidate position; lower values are better.
// Implementations must be pure: deterministic, no side effects, defined for
// every vector of the configured dimension. The solver never retains x, so
// implementations may read it freely but must not mutate it.
type Objective func(x []float64) float64

// Options configures a PSO run.
//
// Dimension  - number of coordinates per particle position (must be > 0).
// LowerBound - per-dimension lower box bound (applied to every coordinate).
// UpperBound - per-dimension upper box bound (must exceed LowerBound).
// Particles  - swarm size (must be > 0).
// Iterations - fixed number of evaluation+move rounds (must be >= 0).
// Inertia    - velocity retention weight w.
// Cognitive  - pull toward the particle's own best position (c1).
// Social     - pull toward the swarm's global best position (c2).
// Seed       - RNG seed; 0 selects the fixed default deterministic stream.
type Options struct {
	Dimension  int
	LowerBound float64
	UpperBound float64
	Particles  int
	Iterations int
	Inertia    float64
	Cognitive  float64
	Social     float64
	Seed       int64
}

// DefaultOptions returns the classic textbook configuration: a 2-D sphere
// search over [−10,10]² with 30 particles, 100 iterations, w=0.5 and
// c1=c2=1.5, on the default deterministic stream (Seed=0).
//
// Use this as a starting point and override fields as needed.
func DefaultOptions() Options {
	return Options{
		Dimension:  2,
		LowerBound: -10,
		UpperBound: 10,
		Particles:  30,
		Iterations: 100,
		Inertia:    0.5,
		Cognitive:  1.5,
		Social:     1.5,
		Seed:       0,
	}
}

// Result holds the outcome of a PSO run.
type Result struct {
	// Position is the best position found by any particle.
	// It is an independent copy; callers may mutate it freely.
	Position []float64

	// Fitness is the objective value at Position.
	Fitness float64
}
