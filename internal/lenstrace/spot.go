package lenstrace

import "math"

// RMSSpotRadius is sqrt(mean(x²+y²)) over the current point of every ray; 0 for no rays.
func RMSSpotRadius(rays []*Ray) Real {
	if len(rays) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rays {
		p := r.P()
		sum += p.X*p.X + p.Y*p.Y
	}
	return math.Sqrt(sum / Real(len(rays)))
}

// Centroid returns the mean current (x, y) of the rays.
func Centroid(rays []*Ray) (x, y Real) {
	if len(rays) == 0 {
		return 0, 0
	}
	for _, r := range rays {
		p := r.P()
		x += p.X
		y += p.Y
	}
	n := Real(len(rays))
	return x / n, y / n
}

// SpotExtent returns the largest transverse distance of any ray's current point.
func SpotExtent(rays []*Ray) Real {
	m := 0.0
	for _, r := range rays {
		if d := r.P().Transverse(); d > m {
			m = d
		}
	}
	return m
}
