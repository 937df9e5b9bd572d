package lenstrace

import "fmt"

// OutputPlane is the non-refracting plane z = Z where tracing stops and spots are measured.
type OutputPlane struct {
	z Real
}

func NewOutputPlane(z Real) *OutputPlane {
	return &OutputPlane{z: z}
}

func (o *OutputPlane) Z() Real { return o.z }

// SetZ moves the plane. Only call it between propagation runs.
func (o *OutputPlane) SetZ(z Real) Real {
	DebugLog("Output plane moved: %g -> %g", o.z, z)
	o.z = z
	return o.z
}

func (o *OutputPlane) String() string { return fmt.Sprintf("output plane z=%g", o.z) }

// Intercept has no aperture; the plane may lie behind the current point.
func (o *OutputPlane) Intercept(r *Ray) (Point3, error) {
	p, k := r.P(), r.K()
	if k.Z == 0 {
		return Point3{}, fmt.Errorf("%w: ray parallel to %s", ErrNoIntercept, o)
	}
	return p.Add(k.Mul((o.z - p.Z) / k.Z)), nil
}

func (o *OutputPlane) Normal(*Ray) (Vector3, error) { return Vector3{0, 0, 1}, nil }

func (o *OutputPlane) Refract(r *Ray) (Vector3, error) {
	return Refract(r.K(), Vector3{0, 0, 1}, 1, 1)
}

func (o *OutputPlane) Propagate(r *Ray) error {
	P, err := o.Intercept(r)
	if err != nil {
		return err
	}
	k, err := o.Refract(r)
	if err != nil {
		return err
	}
	r.Append(P, k)
	return nil
}
