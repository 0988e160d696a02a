package pso

// Sphere is the canonical benchmark objective: the sum of squared
// coordinates. Its unique minimum is 0 at the origin.
//
// Complexity: O(len(x)).
func Sphere(x []float64) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(x); i++ {
		sum += x[i] * x[i]
	}

	return sum
}
