package pso_test

import (
	"fmt"

	"github.com/katalvlaran/swarmopt/pso"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSphere
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Score two fixed points with the benchmark objective.
//	The origin is the global minimum; (3,4) scores 3²+4².
func ExampleSphere() {
	fmt.Println(pso.Sphere([]float64{0, 0}))
	fmt.Println(pso.Sphere([]float64{3, 4}))
	// Output:
	// 0
	// 25
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMinimize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Minimize the sphere function over [−10,10]² with the default swarm:
//	30 particles, 100 iterations, w=0.5, c1=c2=1.5, deterministic stream.
//
// Use case:
//
//	Smoke-level sanity run - the swarm must stay inside the box and close in
//	on the origin.
//
// Complexity: O(Iterations·Particles·Dimension)
func ExampleMinimize() {
	opts := pso.DefaultOptions()

	res, err := pso.Minimize(pso.Sphere, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	inBox := true
	for _, x := range res.Position {
		if x < opts.LowerBound || x > opts.UpperBound {
			inBox = false
		}
	}

	fmt.Println("dimensions:", len(res.Position))
	fmt.Println("within bounds:", inBox)
	fmt.Println("near the origin:", res.Fitness < 1.0)
	// Output:
	// dimensions: 2
	// within bounds: true
	// near the origin: true
}
