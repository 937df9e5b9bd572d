package lenstrace

import "fmt"

// ParaxialFocus extrapolates the ray's last two vertices (in the x–z plane) to x = 0.
// It is only meaningful for a ray launched parallel to and close to the axis.
func ParaxialFocus(r *Ray) (Real, error) {
	n := r.Len()
	if n < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}
	a, b := r.vertices[n-2].P, r.vertices[n-1].P
	dz := b.Z - a.Z
	if dz == 0 {
		return 0, fmt.Errorf("%w: last segment has no axial extent", ErrNoFocus)
	}
	m := (b.X - a.X) / dz
	if m == 0 {
		return 0, fmt.Errorf("%w: last segment parallel to axis at x=%g", ErrNoFocus, b.X)
	}
	c := b.X - m*b.Z
	return -c / m, nil
}
