// Package aco provides Ant Colony Optimization for tour construction over a
// fixed set of 2-D cities (travelling-salesman style).
//
// A Colony owns two n×n matrices: Euclidean distances (computed once,
// read-only) and pheromones (all ones at start, mutated every iteration).
// Each iteration, every simulated ant builds a tour city by city: from the
// current city, each unvisited candidate gets the desirability score
//
//	pheromone[current][candidate]^Alpha · (1/distance[current][candidate])^Beta
//
// and the next city is sampled from the normalized scores (roulette wheel).
// After all ants finish, every pheromone entry decays by (1−Rho), then every
// directed edge of every tour - including the wrap-around edge from the last
// city back to the first - receives Deposit/tourLength. Shorter tours
// therefore reinforce their edges more. The pheromone matrix is asymmetric
// in general: (i,j) and (j,i) are reinforced independently, even though
// distances are symmetric.
//
// Determinism:
//   - All randomness flows through a single seedable *rand.Rand owned by the
//     Colony (Options.Seed; seed==0 selects a fixed default stream).
//
// Failure model:
//   - If every unvisited candidate scores zero (pheromone underflow, or
//     extreme Alpha/Beta), sampling cannot normalize. By default the run
//     stops with ErrNoReachableCity; set Options.UniformFallback to fall
//     back to a uniform pick among the unvisited cities instead.
//
// Termination is a fixed iteration count; there is no convergence check.
//
// Errors: strict sentinels from types.go only; no panics, no logging.
//
// Complexity: O(Ants·n²) time per iteration, O(n²) memory.
//
// Use this package for small, teaching-scale routing instances; the dense
// matrices make no attempt to scale to large n.
package aco
