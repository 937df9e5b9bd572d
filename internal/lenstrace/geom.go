package lenstrace

import (
	"fmt"
	"math"
)

// Refract applies the vector form of Snell's law.
// Contract: n1 is the index on the incident side, n2 on the transmission side.
// Neither k nor n has to be unit; n may point either way along the normal line,
// it is oriented along the incident direction before use.
// The boundary sinθ₁ == n2/n1 is still refracted (grazing exit).
func Refract(k, n Vector3, n1, n2 Real) (Vector3, error) {
	if !(n1 > 0 && n2 > 0) {
		return Vector3{}, fmt.Errorf("%w: n1=%g n2=%g", ErrInvalidIndex, n1, n2)
	}
	kh, err := unit(k)
	if err != nil {
		return Vector3{}, err
	}
	nh, err := unit(n)
	if err != nil {
		return Vector3{}, err
	}
	cosi := nh.Dot(kh)
	if cosi < 0 {
		nh = nh.Mul(-1)
		cosi = -cosi
	}
	// Numeric clamp to [0,1] to avoid tiny negatives/overs.
	if cosi > 1 {
		cosi = 1
	}
	sini := math.Sqrt(1 - cosi*cosi)
	if sini > n2/n1+tirEps {
		return Vector3{}, fmt.Errorf("%w: sinθ=%.12g > n2/n1=%.12g", ErrTotalInternalReflection, sini, n2/n1)
	}
	mu := n1 / n2
	root := 1 - mu*mu*(1-cosi*cosi)
	if root < 0 {
		root = 0
	}
	T := nh.Mul(math.Sqrt(root)).Add(kh.Sub(nh.Mul(cosi)).Mul(mu))
	return T.Norm(), nil
}
