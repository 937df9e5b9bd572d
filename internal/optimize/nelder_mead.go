package optimize

import (
	"math"
	"sort"
)

// NelderMead is a downhill simplex minimiser. Points leaving the [lower, upper] box are
// clamped back onto it.
type NelderMead struct {
	MaxIter int

	// Tol stops the search once the spread of objective values over the simplex drops below it.
	Tol float64

	// Step is the initial simplex edge, per dimension.
	Step float64

	// Iterations reports how many iterations the last run used.
	Iterations int
}

const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

type vertex struct {
	x []float64
	f float64
}

// Run starts from the centre of the bounds.
func (nm *NelderMead) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	x0 := make([]float64, dim)
	for i := range x0 {
		x0[i] = 0.5 * (lower[i] + upper[i])
	}
	return nm.RunFrom(x0, eval, lower, upper)
}

func (nm *NelderMead) RunFrom(x0 []float64, eval func([]float64) float64, lower, upper []float64) ([]float64, float64) {
	dim := len(x0)
	maxIter := nm.MaxIter
	if maxIter <= 0 {
		maxIter = 200 * dim
	}
	step := nm.Step
	if step == 0 {
		step = 0.05
	}

	at := func(x []float64) vertex {
		x = clampAll(x, lower, upper)
		return vertex{x: x, f: eval(x)}
	}

	simplex := make([]vertex, dim+1)
	simplex[0] = at(append([]float64(nil), x0...))
	for i := 0; i < dim; i++ {
		x := append([]float64(nil), simplex[0].x...)
		if x[i]+step <= upper[i] {
			x[i] += step
		} else {
			x[i] -= step
		}
		simplex[i+1] = at(x)
	}

	nm.Iterations = 0
	for ; nm.Iterations < maxIter; nm.Iterations++ {
		sort.SliceStable(simplex, func(a, b int) bool { return simplex[a].f < simplex[b].f })
		best, worst := simplex[0], simplex[dim]
		if math.Abs(worst.f-best.f) <= nm.Tol {
			break
		}

		c := make([]float64, dim)
		for _, v := range simplex[:dim] {
			for i := range c {
				c[i] += v.x[i] / float64(dim)
			}
		}
		along := func(t float64) vertex {
			x := make([]float64, dim)
			for i := range x {
				x[i] = c[i] + t*(worst.x[i]-c[i])
			}
			return at(x)
		}

		r := along(-nmReflect)
		switch {
		case r.f < best.f:
			if e := along(-nmReflect * nmExpand); e.f < r.f {
				simplex[dim] = e
			} else {
				simplex[dim] = r
			}
			continue
		case r.f < simplex[dim-1].f:
			simplex[dim] = r
			continue
		}

		var k vertex
		if r.f < worst.f {
			k = along(-nmReflect * nmContract)
		} else {
			k = along(nmContract)
		}
		if k.f < math.Min(r.f, worst.f) {
			simplex[dim] = k
			continue
		}

		for j := 1; j <= dim; j++ {
			x := make([]float64, dim)
			for i := range x {
				x[i] = best.x[i] + nmShrink*(simplex[j].x[i]-best.x[i])
			}
			simplex[j] = at(x)
		}
	}

	sort.SliceStable(simplex, func(a, b int) bool { return simplex[a].f < simplex[b].f })
	return simplex[0].x, simplex[0].f
}
