package lenstrace

import "fmt"

// Element is one stage of an optical system. Each element finds its own intercept with the
// ray's current line and bends the direction there.
type Element interface {
	fmt.Stringer
	// Intercept returns where the ray's current line meets the element.
	Intercept(r *Ray) (Point3, error)
	// Normal returns the unit surface normal at the intercept, pointing along +z.
	Normal(r *Ray) (Vector3, error)
	// Refract returns the direction after the element.
	Refract(r *Ray) (Vector3, error)
	// Propagate appends the intercept and the refracted direction to the ray.
	Propagate(r *Ray) error
}

// currentDir returns the unit current direction of a ray.
func currentDir(r *Ray) (Vector3, error) {
	return unit(r.K())
}
