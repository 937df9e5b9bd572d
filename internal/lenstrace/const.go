package lenstrace

const (
	DefaultConfig   = "configs/plano_convex.yaml"
	OutputZ         = 250.0
	ProbeOffset     = 0.1
	OptimizeMaxIter = 200
	OptimizeTol     = 1e-9
	SpotRes         = 512

	// initial simplex step, in curvature units
	OptimizeStep = 0.005

	// objective value when no ray reaches the output plane
	FailedRayPenalty = 1e3

	tirEps       = 1e-12
	interceptEps = 1e-9
)
