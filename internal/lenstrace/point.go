package lenstrace

import "math"

// Point3 represents a point in 3-dimensional space.
type Point3 struct {
	X, Y, Z Real
}

// Add lets you translate a Point3 by a Vector3.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector pointing from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Transverse returns the distance of the point from the optical (z) axis.
func (p Point3) Transverse() Real { return math.Hypot(p.X, p.Y) }

// PointFromSlice converts a 3-component slice into a Point3.
func PointFromSlice(v []Real) (Point3, error) {
	u, err := VecFromSlice(v)
	if err != nil {
		return Point3{}, err
	}
	return Point3(u), nil
}
