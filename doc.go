// Package swarmopt is your in-memory playground for population-based
// stochastic optimization - nature-inspired search over continuous and
// combinatorial spaces.
//
// 🚀 What is swarmopt?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Particle Swarm Optimization (PSO): continuous function minimization
//		  with inertia, cognitive and social pulls
//		• Ant Colony Optimization (ACO): probabilistic tour construction over
//		  2-D city sets with pheromone reinforcement and evaporation
//
// ✨ Why choose swarmopt?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Reproducible - every run is driven by an explicit, seedable RNG
//   - Pure Go - no cgo, no hidden deps
//   - Strict contracts - sentinel errors, no panics, no logging
//
// Everything is organized under two subpackages:
//
//	pso/ — swarm state, velocity/position updates, Sphere objective
//	aco/ — distance & pheromone matrices, roulette-wheel tour sampling
//
// Dive into examples/ for runnable demos of both engines.
//
//	go get github.com/katalvlaran/swarmopt
package swarmopt
