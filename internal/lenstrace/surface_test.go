package lenstrace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSurface(t *testing.T, z, curv, n1, n2, ap Real) *SphericalSurface {
	t.Helper()
	s, err := NewSphericalSurface(Point3{0, 0, z}, curv, n1, n2, ap)
	require.NoError(t, err)
	return s
}

func TestNewSphericalSurface_Validation(t *testing.T) {
	_, err := NewSphericalSurface(Point3{}, 0.1, 0, 1.5, 10)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = NewSphericalSurface(Point3{}, 0.1, 1, 1.5, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewSphericalSurface(Point3{}, math.NaN(), 1, 1.5, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s := mustSurface(t, 100, -0.02, 1.5168, 1, 50)
	assert.Equal(t, Point3{0, 0, 100}, s.Position())
	assert.Equal(t, -0.02, s.Curvature())
	assert.Equal(t, 1.5168, s.N1())
	assert.Equal(t, 1.0, s.N2())
	assert.Equal(t, 50.0, s.Aperture())
	assert.InDelta(t, -50, s.Radius(), 1e-12)
	assert.InDelta(t, 50, s.Center().Z, 1e-12)
	assert.True(t, math.IsInf(mustSurface(t, 0, 0, 1, 1.5, 1).Radius(), 1))
}

func TestIntercept_Flat(t *testing.T) {
	s := mustSurface(t, 5, 0, 1, 1.5, 10)
	P, err := s.Intercept(NewRay(Point3{0, 0, 0}, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.Equal(t, Point3{0, 0, 5}, P)

	narrow := mustSurface(t, 5, 0, 1, 1.5, 2)
	_, err = narrow.Intercept(NewRay(Point3{0, 0, 0}, Vector3{0.5, 0, 1}))
	assert.ErrorIs(t, err, ErrNoIntercept, "x=2.5 at z=5 is outside aperture 2")
	_, err = narrow.Intercept(NewRay(Point3{0, 1.5, 0}, Vector3{0, 0, 1}))
	assert.NoError(t, err)
	_, err = narrow.Intercept(NewRay(Point3{1.5, 1.5, 0}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoIntercept, "transverse distance counts both x and y")

	_, err = s.Intercept(NewRay(Point3{0, 0, 0}, Vector3{1, 0, 0}))
	assert.ErrorIs(t, err, ErrNoIntercept)
	_, err = s.Intercept(NewRay(Point3{0, 0, 6}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoIntercept, "plane behind the ray")
	_, err = s.Intercept(NewRay(Point3{0, 0, 0}, Vector3{}))
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestIntercept_ConvexNearBranch(t *testing.T) {
	s := mustSurface(t, 100, 0.03, 1, 1.5, 100)
	start := Point3{0, 0, 0}
	P, err := s.Intercept(NewRay(start, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.InDelta(t, 100, P.Z, 1e-9)
	assert.Zero(t, P.X)

	// the other root sits 2R further along
	far := s.Center().Z + s.Radius()
	assert.Less(t, P.Sub(start).Len(), far-start.Z)

	// off axis the intercept is still on the sphere and on the input side
	P, err = s.Intercept(NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.InDelta(t, s.Radius(), P.Sub(s.Center()).Len(), 1e-9)
	assert.InDelta(t, 101.53535995276852, P.Z, 1e-9)
}

func TestIntercept_ConcaveFarBranch(t *testing.T) {
	s := mustSurface(t, 100, -0.03, 1, 1.5, 100)
	P, err := s.Intercept(NewRay(Point3{0, 0, 0}, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.InDelta(t, 100, P.Z, 1e-9)

	P, err = s.Intercept(NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.InDelta(t, 98.46464004723151, P.Z, 1e-9)
}

func TestIntercept_Failures(t *testing.T) {
	s := mustSurface(t, 100, 0.03, 1, 1.5, 100)
	_, err := s.Intercept(NewRay(Point3{50, 0, 0}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoRealSolution, "x=50 is outside the R=33.3 sphere")

	small := mustSurface(t, 100, 0.03, 1, 1.5, 5)
	_, err = small.Intercept(NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoIntercept)

	// starting past the surface: the selected root lies behind the ray
	_, err = s.Intercept(NewRay(Point3{0, 0, 150}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoIntercept)
}

func TestNormal(t *testing.T) {
	flat := mustSurface(t, 5, 0, 1, 1.5, 10)
	n, err := flat.Normal(NewRay(Point3{1, 2, 0}, Vector3{0.1, 0, 1}))
	require.NoError(t, err)
	assert.Equal(t, Vector3{0, 0, 1}, n)

	off := NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1})
	convex := mustSurface(t, 100, 0.03, 1, 1.5, 100)
	n, err = convex.Normal(off)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Len(), 1e-12)
	assert.Less(t, n.X, 0.0, "convex normal leans toward the axis")
	assert.Greater(t, n.Z, 0.0)

	concave := mustSurface(t, 100, -0.03, 1, 1.5, 100)
	n, err = concave.Normal(off)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Len(), 1e-12)
	assert.Greater(t, n.X, 0.0, "concave normal leans away from the axis")
	assert.Greater(t, n.Z, 0.0)

	_, err = convex.Normal(NewRay(Point3{50, 0, 0}, Vector3{0, 0, 1}))
	assert.ErrorIs(t, err, ErrNoRealSolution)
}

func TestSurfacePropagate(t *testing.T) {
	convex := mustSurface(t, 100, 0.03, 1, 1.5, 100)

	axis := NewRay(Point3{0, 0, 0}, Vector3{0, 0, 1})
	require.NoError(t, convex.Propagate(axis))
	require.Equal(t, 2, axis.Len())
	assert.InDelta(t, 100, axis.P().Z, 1e-9)
	assert.InDelta(t, 1, axis.K().Z, 1e-15)

	off := NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1})
	require.NoError(t, convex.Propagate(off))
	assert.InDelta(t, -0.10315092885059235, off.K().X, 1e-12, "converging")
	assert.InDelta(t, 1, off.K().Len(), 1e-12)

	k, err := convex.Refract(NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1}))
	require.NoError(t, err)
	assert.InDelta(t, off.K().X, k.X, 1e-15)

	concave := mustSurface(t, 100, -0.03, 1, 1.5, 100)
	div := NewRay(Point3{10, 0, 0}, Vector3{0, 0, 1})
	require.NoError(t, concave.Propagate(div))
	assert.InDelta(t, 0.10315092885059228, div.K().X, 1e-12, "diverging")

	miss := NewRay(Point3{50, 0, 0}, Vector3{0, 0, 1})
	assert.ErrorIs(t, convex.Propagate(miss), ErrNoRealSolution)
	assert.Equal(t, 1, miss.Len(), "failed propagate must not append")

	// glass to air at 45 degrees through a flat exit face
	exit := mustSurface(t, 10, 0, 1.5, 1, 100)
	tir := NewRay(Point3{0, 0, 0}, Vector3{1, 0, 1})
	assert.ErrorIs(t, exit.Propagate(tir), ErrTotalInternalReflection)
	assert.Equal(t, 1, tir.Len())
}
