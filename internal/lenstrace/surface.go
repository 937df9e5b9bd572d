package lenstrace

import (
	"fmt"
	"math"
)

// SphericalSurface is a refracting surface of a sphere (or a plane when Curvature is 0)
// cut down to a disk of radius Aperture around the optical axis.
// Curvature > 0 is convex toward the input (centre of curvature at larger z than the vertex).
type SphericalSurface struct {
	position  Point3
	curvature Real
	n1, n2    Real
	aperture  Real
}

// NewSphericalSurface constructs a surface whose vertex is at position (position.Z is the axial offset).
// n1 is the index on the input side, n2 on the output side.
func NewSphericalSurface(position Point3, curvature, n1, n2, aperture Real) (*SphericalSurface, error) {
	if !(n1 > 0 && n2 > 0) {
		return nil, fmt.Errorf("%w: n1=%g n2=%g", ErrInvalidIndex, n1, n2)
	}
	if !(aperture > 0) || !isFinite(curvature) {
		return nil, fmt.Errorf("%w: aperture=%g curvature=%g", ErrInvalidConfig, aperture, curvature)
	}
	s := &SphericalSurface{
		position:  position,
		curvature: curvature,
		n1:        n1,
		n2:        n2,
		aperture:  aperture,
	}
	DebugLog("Created surface: %s", s)
	return s, nil
}

func (s *SphericalSurface) Position() Point3 { return s.position }
func (s *SphericalSurface) Curvature() Real  { return s.curvature }
func (s *SphericalSurface) N1() Real         { return s.n1 }
func (s *SphericalSurface) N2() Real         { return s.n2 }
func (s *SphericalSurface) Aperture() Real   { return s.aperture }

// Flat reports whether the surface is a plane.
func (s *SphericalSurface) Flat() bool { return s.curvature == 0 }

// Radius returns the signed radius of curvature (+Inf for a plane).
func (s *SphericalSurface) Radius() Real {
	if s.Flat() {
		return math.Inf(1)
	}
	return 1 / s.curvature
}

// Center returns the centre of curvature.
func (s *SphericalSurface) Center() Point3 {
	return s.position.Add(Vector3{0, 0, 1 / s.curvature})
}

func (s *SphericalSurface) String() string {
	return fmt.Sprintf("surface z=%g curv=%g n=%g->%g ap=%g", s.position.Z, s.curvature, s.n1, s.n2, s.aperture)
}

// Intercept solves for the ray/surface intersection.
// Convex surfaces take the near root, concave ones the far root; roots behind the ray are rejected.
func (s *SphericalSurface) Intercept(r *Ray) (Point3, error) {
	p := r.P()
	k, err := currentDir(r)
	if err != nil {
		return Point3{}, err
	}

	var l Real
	if s.Flat() {
		if math.Abs(k.Z) < 1e-12 {
			return Point3{}, fmt.Errorf("%w: ray parallel to plane z=%g", ErrNoIntercept, s.position.Z)
		}
		l = (s.position.Z - p.Z) / k.Z
	} else {
		R := 1 / s.curvature
		rv := p.Sub(s.Center())
		rk := rv.Dot(k)
		disc := rk*rk - (rv.Dot(rv) - R*R)
		if disc < 0 {
			return Point3{}, fmt.Errorf("%w: discriminant %.6g at %s", ErrNoRealSolution, disc, s)
		}
		sq := math.Sqrt(disc)
		if s.curvature > 0 {
			l = -rk - sq
		} else {
			l = -rk + sq
		}
	}
	if l < -interceptEps {
		return Point3{}, fmt.Errorf("%w: intercept behind ray (l=%.6g)", ErrNoIntercept, l)
	}

	P := p.Add(k.Mul(l))
	if P.Transverse() > s.aperture {
		return Point3{}, fmt.Errorf("%w: |r|=%.6g > aperture %g", ErrNoIntercept, P.Transverse(), s.aperture)
	}
	return P, nil
}

// normalAt returns the +z facing unit normal at a point on the surface.
func (s *SphericalSurface) normalAt(P Point3) Vector3 {
	switch {
	case s.curvature > 0:
		return s.Center().Sub(P).Norm()
	case s.curvature < 0:
		return P.Sub(s.Center()).Norm()
	default:
		return Vector3{0, 0, 1}
	}
}

func (s *SphericalSurface) Normal(r *Ray) (Vector3, error) {
	P, err := s.Intercept(r)
	if err != nil {
		return Vector3{}, err
	}
	return s.normalAt(P), nil
}

func (s *SphericalSurface) Refract(r *Ray) (Vector3, error) {
	P, err := s.Intercept(r)
	if err != nil {
		return Vector3{}, err
	}
	return Refract(r.K(), s.normalAt(P), s.n1, s.n2)
}

func (s *SphericalSurface) Propagate(r *Ray) error {
	P, err := s.Intercept(r)
	if err != nil {
		return err
	}
	k, err := Refract(r.K(), s.normalAt(P), s.n1, s.n2)
	if err != nil {
		return err
	}
	r.Append(P, k)
	return nil
}

// ParaxialFocus estimates where a ray traced through this surface crosses the axis.
func (s *SphericalSurface) ParaxialFocus(r *Ray) (Real, error) {
	return ParaxialFocus(r)
}
