package lenstrace

import (
	"fmt"
	"math"
)

// Bundle generates a collimated beam: rays placed on concentric rings in the plane z = Z,
// all sharing Direction. Ray j of an n-ray ring sits at angle 2πj/n, so ray 0 is on +x.
type Bundle struct {
	Radii     []Real
	Counts    []int
	Z         Real
	Direction Vector3
}

// NewBundle validates the ring description.
func NewBundle(radii []Real, counts []int, z Real, dir Vector3) (*Bundle, error) {
	if len(radii) != len(counts) {
		return nil, fmt.Errorf("%w: %d radii but %d counts", ErrInvalidBundle, len(radii), len(counts))
	}
	for i := range radii {
		if radii[i] < 0 || !isFinite(radii[i]) {
			return nil, fmt.Errorf("%w: ring %d radius %g", ErrInvalidBundle, i, radii[i])
		}
		if counts[i] < 0 {
			return nil, fmt.Errorf("%w: ring %d count %d", ErrInvalidBundle, i, counts[i])
		}
	}
	if dir.Len() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, ErrZeroVector)
	}
	b := &Bundle{
		Radii:     append([]Real(nil), radii...),
		Counts:    append([]int(nil), counts...),
		Z:         z,
		Direction: dir,
	}
	DebugLog("Created bundle: rings=%d rays=%d z=%g dir=%+v", len(radii), b.Size(), z, dir)
	return b, nil
}

// Size returns the number of rays the bundle generates.
func (b *Bundle) Size() int {
	n := 0
	for _, c := range b.Counts {
		n += c
	}
	return n
}

// Positions returns the starting x and y coordinates, ring by ring.
func (b *Bundle) Positions() (xs, ys []Real) {
	xs = make([]Real, 0, b.Size())
	ys = make([]Real, 0, b.Size())
	for i, r := range b.Radii {
		n := b.Counts[i]
		for j := 0; j < n; j++ {
			theta := 2 * math.Pi * Real(j) / Real(n)
			xs = append(xs, r*math.Cos(theta))
			ys = append(ys, r*math.Sin(theta))
		}
	}
	return xs, ys
}

// Rays creates one fresh ray per generated position.
func (b *Bundle) Rays() []*Ray {
	xs, ys := b.Positions()
	rays := make([]*Ray, len(xs))
	for i := range xs {
		rays[i] = NewRay(Point3{xs[i], ys[i], b.Z}, b.Direction)
	}
	return rays
}

// LinSpace returns n evenly spaced values over [start, stop].
func LinSpace(start, stop Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Real{start}
	}
	out := make([]Real, n)
	step := (stop - start) / Real(n-1)
	for i := range out {
		out[i] = start + step*Real(i)
	}
	out[n-1] = stop
	return out
}
