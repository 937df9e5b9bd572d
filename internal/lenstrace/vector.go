package lenstrace

import (
	"fmt"
	"math"
)

type Real = float64

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Slice returns the components as [x, y, z].
func (v Vector3) Slice() []Real { return []Real{v.X, v.Y, v.Z} }

// VecFromSlice converts a 3-component slice into a Vector3.
func VecFromSlice(v []Real) (Vector3, error) {
	if len(v) != 3 {
		return Vector3{}, fmt.Errorf("%w: got %d components", ErrDimension, len(v))
	}
	return Vector3{v[0], v[1], v[2]}, nil
}

// Normalize scales a 3-component slice to unit length.
func Normalize(v []Real) (Vector3, error) {
	u, err := VecFromSlice(v)
	if err != nil {
		return Vector3{}, err
	}
	return unit(u)
}

// unit is Norm with the zero vector reported as an error.
func unit(v Vector3) (Vector3, error) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return Vector3{}, fmt.Errorf("%w: %+v", ErrZeroVector, v)
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}
