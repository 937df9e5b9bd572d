package lenstrace

import (
	"errors"
	"fmt"
)

var (
	ErrDimension               = errors.New("vector must have 3 components")
	ErrZeroVector              = errors.New("vector has zero length")
	ErrNoIntercept             = errors.New("no intercept within aperture")
	ErrNoRealSolution          = errors.New("no real solution for sphere intercept")
	ErrTotalInternalReflection = errors.New("total internal reflection")
	ErrInvalidIndex            = errors.New("refractive index must be > 0")
	ErrTooFewVertices          = errors.New("ray needs at least two vertices")
	ErrNoFocus                 = errors.New("ray does not cross the optical axis")
	ErrInvalidBundle           = errors.New("invalid bundle")
	ErrInvalidConfig           = errors.New("invalid config")
)

// ElementError records which element of a pipeline stopped a ray.
type ElementError struct {
	Index   int
	Element Element
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element #%d (%s): %v", e.Index, e.Element, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
