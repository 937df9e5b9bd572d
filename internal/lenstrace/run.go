package lenstrace

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result summarises one traced bundle.
type Result struct {
	RunID string

	// FocusZ is the probed paraxial focus, NaN when no probe ran.
	FocusZ  Real
	OutputZ Real
	RMS     Real
	Report  *TraceReport
}

func newRunID() string { return uuid.New().String()[:8] }

// ProbeFocus traces a ray parallel to the axis at the given transverse offset, starting at z,
// and extrapolates its exit segment to the axis.
func ProbeFocus(sys *System, offset, z Real) (Real, error) {
	ray := NewRay(Point3{offset, 0, z}, Vector3{0, 0, 1})
	if err := Propagate(ray, sys.Elements()); err != nil {
		return 0, err
	}
	return sys.Surfaces[len(sys.Surfaces)-1].ParaxialFocus(ray)
}

// Run traces the configured bundle and reports the RMS spot radius at the output plane.
func Run(cfgPath string) (*Result, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return traceConfig(cfg, newRunID())
}

// Focus reports the paraxial focus of the configured system.
func Focus(cfgPath string) (Real, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return 0, err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return 0, err
	}
	z, err := ProbeFocus(sys, cfg.Probe.Offset, cfg.Bundle.Z)
	if err != nil {
		return 0, err
	}
	logger.Info("Paraxial focus", zap.Float64("z", z), zap.Float64("offset", cfg.Probe.Offset))
	return z, nil
}

func traceConfig(cfg *Config, runID string) (*Result, error) {
	sys, err := cfg.BuildSystem()
	if err != nil {
		return nil, err
	}
	res := &Result{RunID: runID, FocusZ: math.NaN()}
	if cfg.Probe.FocusPlane {
		z, err := ProbeFocus(sys, cfg.Probe.Offset, cfg.Bundle.Z)
		if err != nil {
			return nil, err
		}
		sys.Output.SetZ(z)
		res.FocusZ = z
	}

	b, err := cfg.Bundle.Build()
	if err != nil {
		return nil, err
	}
	rep := PropagateBundle(b, sys.Elements())
	res.Report = rep
	res.OutputZ = sys.Output.Z()
	res.RMS = RMSSpotRadius(rep.Traced())

	logger.Info("Traced bundle",
		zap.String("run", runID),
		zap.Int("rays", len(rep.Rays)),
		zap.Int("traced", rep.Counts[Traced]),
		zap.Int("failed", rep.Failed()),
		zap.Float64("outputZ", res.OutputZ),
		zap.Float64("rms", res.RMS))
	if rep.Failed() > 0 {
		logger.Warn("Rays stopped before the output plane", zap.String("run", runID), zap.Stringer("report", rep))
	}

	path := cfg.SpotPNG
	if path == "" && PNG {
		path = "spot.png"
	}
	if path != "" {
		if err := SaveSpotPNG(rep.Traced(), path, cfg.SpotRes); err != nil {
			return nil, err
		}
		logger.Info("Saved spot diagram", zap.String("run", runID), zap.String("path", path))
	}
	return res, nil
}
