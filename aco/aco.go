// Package aco - colony state and the construct/score/update loop.
//
// This file implements the solver proper:
//
//   - NewColony: validate Options and cities, build the distance matrix once,
//     initialize pheromones to all ones.
//   - (*Colony).Run: fixed-iteration driver over runIteration.
//   - constructTour / nextCity: per-ant roulette-wheel tour sampling.
//   - updatePheromones: global evaporation then per-tour deposits.
//
// Design principles:
//   - Deterministic: all draws come from the Colony's own seeded RNG;
//     no time-based randomness.
//   - Strict sentinels: only errors from types.go; no panics on user input.
//   - Hot-path discipline: all matrices and scratch slices are allocated at
//     construction; iterations perform no allocations.
package aco

import (
	"math"
	"math/rand"
)

// Colony owns the distance and pheromone matrices, the RNG, and the running
// best tour. A Colony is single-goroutine state: nothing inside is safe for
// concurrent use, and nothing outside the Colony aliases its matrices.
type Colony struct {
	opts Options
	n    int

	dist [][]float64 // symmetric, zero diagonal, read-only after construction
	pher [][]float64 // asymmetric in general, mutated every iteration

	bestPath     []int
	bestDistance float64

	rng *rand.Rand

	// Per-run scratch, sized at construction so iterations allocate nothing.
	tours   [][]int
	lengths []float64
	visited []bool
	scores  []float64
}

// NewColony validates opts and cities and returns a ready Colony.
//
// Contract:
//   - len(cities) >= 2, all coordinates finite, no two cities coincident
//     (a zero distance would make visibility infinite; see ErrCoincidentCities).
//   - Options per the field docs in types.go.
//
// The distance matrix is filled once with pairwise Euclidean distances
// (symmetric by construction, zero diagonal); pheromones start at 1 on every
// entry, the diagonal included - the diagonal is never read.
//
// Errors: ErrTooFewCities, ErrBadCoordinate, ErrCoincidentCities,
// ErrBadAntCount, ErrBadIterations, ErrBadExponent, ErrBadEvaporation,
// ErrBadDeposit.
//
// Complexity: O(n²) time and space.
func NewColony(cities []City, opts Options) (*Colony, error) {
	// Stage 1 - validate configuration.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// Stage 2 - validate cities.
	var (
		n = len(cities)
		i int
		j int
	)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	for i = 0; i < n; i++ {
		if !isFinite(cities[i].X) || !isFinite(cities[i].Y) {
			return nil, ErrBadCoordinate
		}
	}

	// Stage 3 - build matrices.
	var (
		c = &Colony{
			opts:         opts,
			n:            n,
			dist:         make([][]float64, n),
			pher:         make([][]float64, n),
			bestDistance: math.Inf(1),
			rng:          rngFromSeed(opts.Seed),
			tours:        make([][]int, opts.Ants),
			lengths:      make([]float64, opts.Ants),
			visited:      make([]bool, n),
			scores:       make([]float64, n),
		}
		dx float64
		dy float64
	)
	for i = 0; i < n; i++ {
		c.dist[i] = make([]float64, n)
		c.pher[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			dx = cities[i].X - cities[j].X
			dy = cities[i].Y - cities[j].Y
			c.dist[i][j] = math.Hypot(dx, dy)
			c.pher[i][j] = 1

			if i != j && c.dist[i][j] == 0 {
				return nil, ErrCoincidentCities
			}
		}
	}

	for i = 0; i < opts.Ants; i++ {
		c.tours[i] = make([]int, n)
	}

	return c, nil
}

// validateOptions checks every Options field.
// Side-effect free; returns the first violated sentinel.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Ants <= 0 {
		return ErrBadAntCount
	}
	if opts.Iterations < 0 {
		return ErrBadIterations
	}
	if !isFinite(opts.Alpha) || opts.Alpha < 0 || !isFinite(opts.Beta) || opts.Beta < 0 {
		return ErrBadExponent
	}
	if math.IsNaN(opts.Rho) || opts.Rho < 0 || opts.Rho >= 1 {
		return ErrBadEvaporation
	}
	if !isFinite(opts.Deposit) || opts.Deposit < 0 {
		return ErrBadDeposit
	}

	return nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Run executes Options.Iterations rounds of tour construction, pheromone
// update and best tracking, then returns the best tour found.
//
// Zero iterations returns the initial best unchanged: nil path, +Inf
// distance. Run may be called again to keep searching with the accumulated
// pheromone state.
//
// Errors: ErrNoReachableCity, unless Options.UniformFallback is set.
//
// Complexity: O(Iterations·Ants·n²) time, O(1) extra space.
func (c *Colony) Run() (Result, error) {
	var it int
	for it = 0; it < c.opts.Iterations; it++ {
		if err := c.runIteration(); err != nil {
			return Result{}, err
		}
	}

	return c.best(), nil
}

// best snapshots the running best as an independent Result.
//
// Complexity: O(n).
func (c *Colony) best() Result {
	if c.bestPath == nil {
		return Result{Path: nil, Distance: math.Inf(1)}
	}
	out := make([]int, len(c.bestPath))
	copy(out, c.bestPath)

	return Result{Path: out, Distance: c.bestDistance}
}

// runIteration performs one full round: every ant constructs a tour, all
// tours are scored, pheromones evaporate and receive deposits, and finally
// the running best is updated on strict improvement.
//
// Complexity: O(Ants·n²).
func (c *Colony) runIteration() error {
	var (
		i   int
		err error
	)

	// Stage 1 - construct and score one tour per ant.
	for i = 0; i < c.opts.Ants; i++ {
		if err = c.constructTour(c.tours[i]); err != nil {
			return err
		}
		c.lengths[i] = tourLength(c.dist, c.tours[i])
	}

	// Stage 2 - evaporate, then deposit from every tour.
	c.updatePheromones(c.tours, c.lengths)

	// Stage 3 - track the best tour across the whole run.
	for i = 0; i < c.opts.Ants; i++ {
		if c.lengths[i] < c.bestDistance {
			c.bestDistance = c.lengths[i]
			if c.bestPath == nil {
				c.bestPath = make([]int, c.n)
			}
			copy(c.bestPath, c.tours[i])
		}
	}

	return nil
}

// constructTour fills tour with a fresh city permutation: a uniformly random
// start, then repeated roulette-wheel picks among the unvisited cities.
//
// Complexity: O(n²).
func (c *Colony) constructTour(tour []int) error {
	var (
		current = c.rng.Intn(c.n)
		next    int
		i       int
		err     error
	)

	for i = 0; i < c.n; i++ {
		c.visited[i] = false
	}
	tour[0] = current
	c.visited[current] = true

	for i = 1; i < c.n; i++ {
		if next, err = c.nextCity(current); err != nil {
			return err
		}
		tour[i] = next
		c.visited[next] = true
		current = next
	}

	return nil
}

// nextCity samples the successor of current from the unvisited cities.
// Each candidate j scores pher[current][j]^Alpha · (1/dist[current][j])^Beta;
// visited cities score zero. The scores are normalized implicitly by
// sampling r uniform in [0, total).
//
// When the total score is not strictly positive no distribution exists:
// with Options.UniformFallback the pick degrades to uniform among the
// unvisited cities, otherwise ErrNoReachableCity is returned.
//
// Complexity: O(n).
func (c *Colony) nextCity(current int) (int, error) {
	var (
		total float64
		score float64
		j     int
	)

	for j = 0; j < c.n; j++ {
		if c.visited[j] {
			c.scores[j] = 0

			continue
		}
		score = math.Pow(c.pher[current][j], c.opts.Alpha) *
			math.Pow(1/c.dist[current][j], c.opts.Beta)
		c.scores[j] = score
		total += score
	}

	if !(total > 0) {
		if c.opts.UniformFallback {
			return c.uniformUnvisited(), nil
		}

		return 0, ErrNoReachableCity
	}

	// Roulette wheel: walk the cumulative mass until it passes r.
	var (
		r    = c.rng.Float64() * total
		cum  float64
		last = -1
	)
	for j = 0; j < c.n; j++ {
		if c.visited[j] {
			continue
		}
		cum += c.scores[j]
		last = j
		if r < cum {
			return j, nil
		}
	}

	// Floating-point shortfall: cum may end a hair below total. The last
	// unvisited city owns the remaining mass.
	return last, nil
}

// uniformUnvisited picks uniformly among the cities not yet visited.
// Callers guarantee at least one unvisited city remains.
//
// Complexity: O(n).
func (c *Colony) uniformUnvisited() int {
	var (
		count int
		j     int
	)
	for j = 0; j < c.n; j++ {
		if !c.visited[j] {
			count++
		}
	}

	var k = c.rng.Intn(count)
	for j = 0; j < c.n; j++ {
		if c.visited[j] {
			continue
		}
		if k == 0 {
			return j
		}
		k--
	}

	// Unreachable by the caller contract; keep the compiler satisfied.
	return 0
}

// updatePheromones applies global evaporation followed by per-tour deposits.
//
// Every entry decays by (1−Rho) exactly once, then each tour adds
// Deposit/length to every directed edge it traversed, wrap-around edge
// included. Deposits follow traversal direction, which is what leaves the
// matrix asymmetric over time.
//
// Complexity: O(n² + Ants·n).
func (c *Colony) updatePheromones(tours [][]int, lengths []float64) {
	var (
		factor = 1 - c.opts.Rho
		i      int
		j      int
	)
	for i = 0; i < c.n; i++ {
		for j = 0; j < c.n; j++ {
			c.pher[i][j] *= factor
		}
	}

	var (
		contribution float64
		path         []int
		prev         int
		t            int
		n            int
	)
	for t = 0; t < len(tours); t++ {
		path = tours[t]
		n = len(path)
		contribution = c.opts.Deposit / lengths[t]

		for i = 0; i < n; i++ {
			prev = path[(i-1+n)%n]
			c.pher[prev][path[i]] += contribution
		}
	}
}
