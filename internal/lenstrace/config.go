package lenstrace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SurfaceCfg describes one refracting surface; Position is [x, y, z] of the vertex.
type SurfaceCfg struct {
	Position  []Real `yaml:"position" json:"position"`
	Curvature Real   `yaml:"curvature" json:"curvature"`
	N1        Real   `yaml:"n1" json:"n1"`
	N2        Real   `yaml:"n2" json:"n2"`
	Aperture  Real   `yaml:"aperture" json:"aperture"`
}

type OutputPlaneCfg struct {
	Z *Real `yaml:"z" json:"z"`
}

// BundleCfg gives the rings either explicitly (Radii) or as Rings radii spaced evenly over [0, MaxRadius].
type BundleCfg struct {
	Radii     []Real `yaml:"radii,omitempty" json:"radii,omitempty"`
	MaxRadius Real   `yaml:"maxRadius,omitempty" json:"maxRadius,omitempty"`
	Rings     int    `yaml:"rings,omitempty" json:"rings,omitempty"`
	Counts    []int  `yaml:"counts" json:"counts"`
	Z         Real   `yaml:"z" json:"z"`
	Direction []Real `yaml:"direction" json:"direction"`
}

// ProbeCfg configures the paraxial probe ray.
type ProbeCfg struct {
	Offset Real `yaml:"offset,omitempty" json:"offset,omitempty"`

	// FocusPlane moves the output plane to the estimated paraxial focus before tracing the bundle.
	FocusPlane bool `yaml:"focusPlane,omitempty" json:"focusPlane,omitempty"`
}

type OptimizeCfg struct {
	Surfaces []int  `yaml:"surfaces" json:"surfaces"`
	Lower    []Real `yaml:"lower" json:"lower"`
	Upper    []Real `yaml:"upper" json:"upper"`
	MaxIter  int    `yaml:"maxIter,omitempty" json:"maxIter,omitempty"`
	Tol      Real   `yaml:"tol,omitempty" json:"tol,omitempty"`
}

type Config struct {
	Surfaces    []SurfaceCfg   `yaml:"surfaces" json:"surfaces"`
	OutputPlane OutputPlaneCfg `yaml:"outputPlane" json:"outputPlane"`
	Bundle      BundleCfg      `yaml:"bundle" json:"bundle"`
	Probe       ProbeCfg       `yaml:"probe,omitempty" json:"probe,omitempty"`
	Optimize    *OptimizeCfg   `yaml:"optimize,omitempty" json:"optimize,omitempty"`
	SpotPNG     string         `yaml:"spotPNG,omitempty" json:"spotPNG,omitempty"`
	SpotRes     int            `yaml:"spotRes,omitempty" json:"spotRes,omitempty"`
}

// Build validates and constructs the runtime surface.
func (sc SurfaceCfg) Build() (*SphericalSurface, error) {
	pos, err := PointFromSlice(sc.Position)
	if err != nil {
		return nil, fmt.Errorf("surface position: %w", err)
	}
	return NewSphericalSurface(pos, sc.Curvature, sc.N1, sc.N2, sc.Aperture)
}

func (oc OutputPlaneCfg) Build() *OutputPlane {
	z := OutputZ
	if oc.Z != nil {
		z = *oc.Z
	}
	return NewOutputPlane(z)
}

func (bc BundleCfg) Build() (*Bundle, error) {
	dir, err := VecFromSlice(bc.Direction)
	if err != nil {
		return nil, fmt.Errorf("bundle direction: %w", err)
	}
	radii := bc.Radii
	if len(radii) == 0 && bc.Rings > 0 {
		radii = LinSpace(0, bc.MaxRadius, bc.Rings)
	}
	return NewBundle(radii, bc.Counts, bc.Z, dir)
}

// System is a built optical system: surfaces followed by the output plane.
type System struct {
	Surfaces []*SphericalSurface
	Output   *OutputPlane
}

// Elements returns the propagation order.
func (s *System) Elements() []Element {
	elems := make([]Element, 0, len(s.Surfaces)+1)
	for _, sf := range s.Surfaces {
		elems = append(elems, sf)
	}
	return append(elems, s.Output)
}

// BuildSystem constructs the surfaces and output plane of the config.
func (c *Config) BuildSystem() (*System, error) {
	sys := &System{Output: c.OutputPlane.Build()}
	for i, sc := range c.Surfaces {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("surface #%d: %w", i, err)
		}
		sys.Surfaces = append(sys.Surfaces, s)
	}
	return sys, nil
}

func (c *Config) validate() error {
	if len(c.Surfaces) == 0 {
		return fmt.Errorf("%w: config has no surfaces", ErrInvalidConfig)
	}
	if o := c.Optimize; o != nil {
		if len(o.Surfaces) == 0 || len(o.Lower) != len(o.Surfaces) || len(o.Upper) != len(o.Surfaces) {
			return fmt.Errorf("%w: optimize needs matching surfaces/lower/upper", ErrInvalidConfig)
		}
		for i, si := range o.Surfaces {
			if si < 0 || si >= len(c.Surfaces) {
				return fmt.Errorf("%w: optimize surface index %d out of range", ErrInvalidConfig, si)
			}
			if o.Lower[i] > o.Upper[i] {
				return fmt.Errorf("%w: optimize bounds [%g, %g]", ErrInvalidConfig, o.Lower[i], o.Upper[i])
			}
		}
	}
	return nil
}

// parseConfig decodes JSON when the path ends in .json, YAML otherwise.
func parseConfig(path string, data []byte) (*Config, error) {
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(path, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if len(cfg.Bundle.Direction) == 0 {
		cfg.Bundle.Direction = []Real{0, 0, 1}
	}
	if cfg.Probe.Offset <= 0 {
		cfg.Probe.Offset = ProbeOffset
	}
	if cfg.SpotRes <= 0 {
		cfg.SpotRes = SpotRes
	}
	if o := cfg.Optimize; o != nil {
		if o.MaxIter <= 0 {
			o.MaxIter = OptimizeMaxIter
		}
		if o.Tol <= 0 {
			o.Tol = OptimizeTol
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: surfaces=%d, probe=%g, spotRes=%d", path, len(cfg.Surfaces), cfg.Probe.Offset, cfg.SpotRes)
	return cfg, nil
}
