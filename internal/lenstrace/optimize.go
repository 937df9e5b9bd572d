package lenstrace

import (
	"fmt"

	"github.com/lukaszgryglicki/lenstrace/internal/optimize"
	"go.uber.org/zap"
)

// OptimizeResult is the best curvature set found and the trace it produces.
type OptimizeResult struct {
	Curvatures []Real
	RMS        Real
	Iterations int
	Result     *Result
}

// withCurvatures returns a shallow config copy with the selected surfaces' curvatures replaced.
func (c *Config) withCurvatures(idx []int, curvs []Real) *Config {
	cp := *c
	cp.Surfaces = append([]SurfaceCfg(nil), c.Surfaces...)
	for i, si := range idx {
		cp.Surfaces[si].Curvature = curvs[i]
	}
	cp.SpotPNG = ""
	return &cp
}

// spotObjective is the RMS spot radius of the traced rays; rays that do not reach the output
// plane add FailedRayPenalty in proportion to their share of the bundle.
func spotObjective(cfg *Config) (Real, error) {
	sys, err := cfg.BuildSystem()
	if err != nil {
		return 0, err
	}
	if cfg.Probe.FocusPlane {
		z, err := ProbeFocus(sys, cfg.Probe.Offset, cfg.Bundle.Z)
		if err != nil {
			return 0, err
		}
		sys.Output.SetZ(z)
	}
	b, err := cfg.Bundle.Build()
	if err != nil {
		return 0, err
	}
	rep := PropagateBundle(b, sys.Elements())
	if len(rep.Rays) == 0 {
		return 0, fmt.Errorf("%w: empty bundle", ErrInvalidBundle)
	}
	if rep.Counts[Traced] == 0 {
		return FailedRayPenalty, nil
	}
	return RMSSpotRadius(rep.Traced()) + FailedRayPenalty*Real(rep.Failed())/Real(len(rep.Rays)), nil
}

// Optimize minimises the RMS spot radius over the curvatures listed in the optimize section.
func Optimize(cfgPath string) (*OptimizeResult, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if cfg.Optimize == nil {
		return nil, fmt.Errorf("%w: %s has no optimize section", ErrInvalidConfig, cfgPath)
	}
	return optimizeConfig(cfg, &optimize.NelderMead{
		MaxIter: cfg.Optimize.MaxIter,
		Tol:     cfg.Optimize.Tol,
		Step:    OptimizeStep,
	})
}

func optimizeConfig(cfg *Config, opt optimize.StartingOptimizer) (*OptimizeResult, error) {
	oc := cfg.Optimize
	if oc == nil {
		return nil, fmt.Errorf("%w: no optimize section", ErrInvalidConfig)
	}
	// fail early on a config that cannot be traced at all
	if _, err := spotObjective(cfg); err != nil {
		return nil, err
	}

	runID := newRunID()
	x0 := make([]Real, len(oc.Surfaces))
	for i, si := range oc.Surfaces {
		x0[i] = cfg.Surfaces[si].Curvature
	}
	evals := 0
	eval := func(x []float64) float64 {
		evals++
		v, err := spotObjective(cfg.withCurvatures(oc.Surfaces, x))
		if err != nil {
			DebugLogOnce("Objective failed, using penalty: %v", err)
			return FailedRayPenalty
		}
		return v
	}
	best, rms := opt.RunFrom(x0, eval, oc.Lower, oc.Upper)

	iters := evals
	if nm, ok := opt.(*optimize.NelderMead); ok {
		iters = nm.Iterations
	}
	logger.Info("Optimized curvatures",
		zap.String("run", runID),
		zap.Float64s("curvatures", best),
		zap.Float64("rms", rms),
		zap.Int("iterations", iters),
		zap.Int("evaluations", evals))

	res, err := traceConfig(cfg.withCurvatures(oc.Surfaces, best), runID)
	if err != nil {
		return nil, err
	}
	if cfg.SpotPNG != "" {
		if err := SaveSpotPNG(res.Report.Traced(), cfg.SpotPNG, cfg.SpotRes); err != nil {
			return nil, err
		}
	}
	return &OptimizeResult{Curvatures: best, RMS: res.RMS, Iterations: iters, Result: res}, nil
}
