// Package optimize holds the gradient-free minimiser used to tune lens curvatures.
package optimize

// Optimizer defines an optimization algorithm interface
type Optimizer interface {
	// Run executes the optimization
	// eval: objective function to minimize
	// lower, upper: parameter bounds
	// dim: dimensionality of parameter space
	// Returns: best parameters and best cost
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64)
}

// StartingOptimizer can be seeded with an initial guess instead of the box centre.
type StartingOptimizer interface {
	Optimizer
	RunFrom(x0 []float64, eval func([]float64) float64, lower, upper []float64) ([]float64, float64)
}

var _ StartingOptimizer = (*NelderMead)(nil)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampAll(x, lower, upper []float64) []float64 {
	for i := range x {
		x[i] = clamp(x[i], lower[i], upper[i])
	}
	return x
}
