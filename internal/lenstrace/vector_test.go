package lenstrace

import (
	"errors"
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	l := v.Len()
	if math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
	if (Vector3{}).Norm() != (Vector3{}) {
		t.Fatal("Norm of zero vector should be zero")
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range [][]Real{{1, 0, 0}, {3, 4, 0}, {-1, 2, -7}, {1e-8, 1e-8, 1e-8}, {0.01, 0, 1}} {
		u, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", in, err)
		}
		if math.Abs(u.Len()-1) > 1e-12 {
			t.Fatalf("Normalize(%v) not unit: %.15g", in, u.Len())
		}
		// parallel: scaling back by |v| gives v
		v := Vector3{in[0], in[1], in[2]}
		if d := u.Mul(v.Len()).Sub(v).Len(); d > 1e-12*math.Max(1, v.Len()) {
			t.Fatalf("Normalize(%v) not parallel, diff %.3g", in, d)
		}
	}

	for _, bad := range [][]Real{nil, {1, 2}, {1, 2, 3, 4}} {
		if _, err := Normalize(bad); !errors.Is(err, ErrDimension) {
			t.Fatalf("Normalize(%v): want ErrDimension, got %v", bad, err)
		}
	}
	if _, err := Normalize([]Real{0, 0, 0}); !errors.Is(err, ErrZeroVector) {
		t.Fatalf("want ErrZeroVector, got %v", err)
	}
}

func TestVecFromSlice(t *testing.T) {
	v, err := VecFromSlice([]Real{1, 2, 3})
	if err != nil || v != (Vector3{1, 2, 3}) {
		t.Fatalf("VecFromSlice: %+v %v", v, err)
	}
	if got := v.Slice(); len(got) != 3 || got[2] != 3 {
		t.Fatalf("Slice: %v", got)
	}
}
