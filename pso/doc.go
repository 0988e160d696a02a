// Package pso provides Particle Swarm Optimization for continuous
// function minimization.
//
// A swarm of candidate solutions (particles) moves through a bounded
// d-dimensional box. Every iteration each particle is re-scored, then pulled
// toward its own best-seen position (cognitive term) and toward the best
// position any particle has seen (social term):
//
//	v[i] = w·v[i] + c1·r1·(pBest[i]−x[i]) + c2·r2·(gBest[i]−x[i])
//	x[i] = clamp(x[i] + v[i], lower, upper)
//
// with fresh uniform r1, r2 ∈ [0,1) drawn per particle per dimension.
// Velocity is never clamped; only position is.
//
// Determinism:
//   - All randomness flows through a single seedable *rand.Rand owned by the
//     Swarm (Options.Seed; seed==0 selects a fixed default stream).
//   - The draw order is part of the contract (see New and (*Swarm).Step),
//     so runs are exactly reproducible.
//
// Termination is a fixed iteration count; there is no convergence check and
// no early stop.
//
// Errors: strict sentinels from types.go only; no panics, no logging.
//
// Complexity: O(particles·dimension) time per iteration,
// O(particles·dimension) memory total.
//
// Use this package when you need a compact, reproducible PSO baseline on
// box-bounded continuous objectives.
package pso
