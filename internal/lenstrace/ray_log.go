package lenstrace

import (
	"errors"
	"fmt"
	"strings"
)

type Category uint8

const (
	Traced         Category = iota // ray passed every element
	NoIntercept                    // ray missed an aperture or ran parallel to a plane
	NoRealSolution                 // ray line never meets the sphere
	TIR                            // total internal reflection
	Invalid                        // degenerate input (zero direction, bad index)
)

var categoryNames = [...]string{"traced", "no_intercept", "no_real_solution", "tir", "invalid"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// Categorize maps a propagation error onto its category.
func Categorize(err error) Category {
	switch {
	case err == nil:
		return Traced
	case errors.Is(err, ErrNoIntercept):
		return NoIntercept
	case errors.Is(err, ErrNoRealSolution):
		return NoRealSolution
	case errors.Is(err, ErrTotalInternalReflection):
		return TIR
	default:
		return Invalid
	}
}

// RayStatus is the terminal state of one ray of a batch.
type RayStatus struct {
	Category Category
	// Element is the index of the element that stopped the ray, -1 when traced.
	Element int
	Err     error
}

// TraceReport collects the outcome of a batch propagation.
type TraceReport struct {
	Rays     []*Ray
	Statuses []RayStatus
	Counts   map[Category]int
}

func newTraceReport(rays []*Ray) *TraceReport {
	return &TraceReport{
		Rays:     rays,
		Statuses: make([]RayStatus, len(rays)),
		Counts:   make(map[Category]int),
	}
}

func (t *TraceReport) record(i int, err error) {
	st := RayStatus{Category: Categorize(err), Element: -1, Err: err}
	var ee *ElementError
	if errors.As(err, &ee) {
		st.Element = ee.Index
	}
	t.Statuses[i] = st
	t.Counts[st.Category]++
}

// Traced returns the rays that reached the end of the pipeline.
func (t *TraceReport) Traced() []*Ray {
	out := make([]*Ray, 0, t.Counts[Traced])
	for i, st := range t.Statuses {
		if st.Category == Traced {
			out = append(out, t.Rays[i])
		}
	}
	return out
}

// Failed returns how many rays stopped early.
func (t *TraceReport) Failed() int { return len(t.Rays) - t.Counts[Traced] }

func (t *TraceReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "rays=%d", len(t.Rays))
	for c := Traced; c <= Invalid; c++ {
		if n := t.Counts[c]; n > 0 {
			fmt.Fprintf(&sb, " %s=%d", c, n)
		}
	}
	return sb.String()
}
