// Package pso - swarm state and the evaluation/move loop.
//
// This file implements the solver proper:
//
//   - New: validate Options, draw the initial population, seed the global best.
//   - (*Swarm).Step: one evaluation pass followed by one move pass.
//   - (*Swarm).Run / Minimize: fixed-iteration driver and one-call wrapper.
//
// Design principles:
//   - Deterministic: all draws come from the Swarm's own seeded RNG in a
//     documented order; no time-based randomness.
//   - Strict sentinels: only errors from types.go; no panics on user input.
//   - Hot-path discipline: all slices are allocated at construction; Step
//     performs no allocations.
package pso

import (
	"math"
	"math/rand"
)

// particle is one candidate solution: a position, its velocity, and the best
// position this particle has ever scored.
//
// Invariant: bestFitness == objective(best) at all times after construction.
type particle struct {
	position    []float64
	velocity    []float64
	best        []float64
	bestFitness float64
}

// Swarm owns the whole population plus the global best and the RNG.
// A Swarm is single-goroutine state: nothing inside is safe for concurrent use.
//
// Invariant: globalBestFitness is the minimum bestFitness any particle has
// held since the swarm was seeded (see New for the seeding rule).
type Swarm struct {
	obj       Objective
	opts      Options
	particles []particle

	globalBest        []float64
	globalBestFitness float64

	rng *rand.Rand
}

// New validates opts, draws the initial population and returns a ready Swarm.
//
// Initialization contract (in RNG draw order, per particle, in particle order):
//  1. Dimension position coordinates, each uniform in [LowerBound, UpperBound).
//  2. Dimension velocity coordinates, each uniform in [−1, 1).
//
// Each particle's personal best starts at its initial position. The global
// best is then seeded from particle 0 - not from the minimum over the whole
// population; the first evaluation pass of Step reconciles it. Preserving
// this seeding keeps zero-iteration runs bit-for-bit compatible with the
// classical formulation.
//
// Errors: ErrNilObjective, ErrBadDimension, ErrBadBounds, ErrBadSwarmSize,
// ErrBadIterations, ErrBadCoefficient.
//
// Complexity: O(Particles·Dimension) time and space.
func New(obj Objective, opts Options) (*Swarm, error) {
	// Stage 1 - validate configuration.
	if err := validateOptions(obj, opts); err != nil {
		return nil, err
	}

	var (
		s = &Swarm{
			obj:       obj,
			opts:      opts,
			particles: make([]particle, opts.Particles),
			rng:       rngFromSeed(opts.Seed),
		}
		p *particle
		i int
		d int
	)

	// Stage 2 - draw the initial population.
	for i = 0; i < opts.Particles; i++ {
		p = &s.particles[i]
		p.position = make([]float64, opts.Dimension)
		p.velocity = make([]float64, opts.Dimension)
		p.best = make([]float64, opts.Dimension)

		for d = 0; d < opts.Dimension; d++ {
			p.position[d] = uniformIn(s.rng, opts.LowerBound, opts.UpperBound)
		}
		for d = 0; d < opts.Dimension; d++ {
			p.velocity[d] = uniformIn(s.rng, -1, 1)
		}

		copy(p.best, p.position)
		p.bestFitness = obj(p.position)
	}

	// Stage 3 - seed the global best from particle 0.
	s.globalBest = make([]float64, opts.Dimension)
	copy(s.globalBest, s.particles[0].best)
	s.globalBestFitness = s.particles[0].bestFitness

	return s, nil
}

// validateOptions checks the objective and every Options field.
// Side-effect free; returns the first violated sentinel.
//
// Complexity: O(1).
func validateOptions(obj Objective, opts Options) error {
	if obj == nil {
		return ErrNilObjective
	}
	if opts.Dimension <= 0 {
		return ErrBadDimension
	}
	if math.IsNaN(opts.LowerBound) || math.IsInf(opts.LowerBound, 0) ||
		math.IsNaN(opts.UpperBound) || math.IsInf(opts.UpperBound, 0) ||
		opts.LowerBound >= opts.UpperBound {
		return ErrBadBounds
	}
	if opts.Particles <= 0 {
		return ErrBadSwarmSize
	}
	if opts.Iterations < 0 {
		return ErrBadIterations
	}
	if !validCoefficient(opts.Inertia) || !validCoefficient(opts.Cognitive) || !validCoefficient(opts.Social) {
		return ErrBadCoefficient
	}

	return nil
}

// validCoefficient reports whether c is finite and non-negative.
func validCoefficient(c float64) bool {
	return c >= 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}

// Step advances the swarm by exactly one iteration:
//
//	Pass 1 (evaluation): re-score every particle at its current position;
//	the personal-best and global-best checks are independent - because the
//	global best is seeded from particle 0, a particle can beat the global
//	best without beating its own.
//	Pass 2 (move): for every particle and every dimension, draw r1 then r2
//	from the swarm RNG, update the velocity, add it to the position, and clamp
//	the position (never the velocity) into [LowerBound, UpperBound].
//
// Step performs no allocations and cannot fail.
//
// Complexity: O(Particles·Dimension).
func (s *Swarm) Step() {
	var (
		p       *particle
		fitness float64
		r1, r2  float64
		i       int
		d       int
	)

	// Pass 1 - evaluation.
	for i = range s.particles {
		p = &s.particles[i]
		fitness = s.obj(p.position)

		if fitness < p.bestFitness {
			copy(p.best, p.position)
			p.bestFitness = fitness
		}
		if fitness < s.globalBestFitness {
			copy(s.globalBest, p.position)
			s.globalBestFitness = fitness
		}
	}

	// Pass 2 - move.
	for i = range s.particles {
		p = &s.particles[i]
		for d = 0; d < s.opts.Dimension; d++ {
			// r1 and r2 MUST be drawn fresh for every dimension of every
			// particle; reusing them across dimensions correlates the axes.
			r1 = s.rng.Float64()
			r2 = s.rng.Float64()

			p.velocity[d] = s.opts.Inertia*p.velocity[d] +
				s.opts.Cognitive*r1*(p.best[d]-p.position[d]) +
				s.opts.Social*r2*(s.globalBest[d]-p.position[d])

			p.position[d] += p.velocity[d]

			// Keep the position inside the box; the velocity is left as is.
			if p.position[d] < s.opts.LowerBound {
				p.position[d] = s.opts.LowerBound
			} else if p.position[d] > s.opts.UpperBound {
				p.position[d] = s.opts.UpperBound
			}
		}
	}
}

// Best returns an independent copy of the current global best position and
// its fitness. Safe to call at any point between steps.
//
// Complexity: O(Dimension).
func (s *Swarm) Best() ([]float64, float64) {
	out := make([]float64, len(s.globalBest))
	copy(out, s.globalBest)

	return out, s.globalBestFitness
}

// Run executes Options.Iterations steps and returns the final Result.
// Zero iterations returns the seeded best untouched.
//
// Complexity: O(Iterations·Particles·Dimension).
func (s *Swarm) Run() Result {
	var it int
	for it = 0; it < s.opts.Iterations; it++ {
		s.Step()
	}

	pos, fit := s.Best()

	return Result{Position: pos, Fitness: fit}
}

// Minimize is the one-call entry point: New + Run.
//
// Errors: those of New; Run itself cannot fail.
//
// Complexity: O(Iterations·Particles·Dimension).
func Minimize(obj Objective, opts Options) (Result, error) {
	s, err := New(obj, opts)
	if err != nil {
		return Result{}, err
	}

	return s.Run(), nil
}
