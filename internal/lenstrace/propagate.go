package lenstrace

// Propagate runs a ray through the elements in order and stops at the first failure.
func Propagate(r *Ray, elems []Element) error {
	for i, e := range elems {
		if err := e.Propagate(r); err != nil {
			return &ElementError{Index: i, Element: e, Err: err}
		}
	}
	return nil
}

// PropagateRays runs every ray through the elements. A ray that fails keeps the vertices
// it reached and is reported in its status; the other rays are unaffected.
func PropagateRays(rays []*Ray, elems []Element) *TraceReport {
	rep := newTraceReport(rays)
	for i, r := range rays {
		err := Propagate(r, elems)
		if err != nil && Debug {
			DebugLog("Ray #%d stopped: %v", i, err)
		}
		rep.record(i, err)
	}
	return rep
}

// PropagateBundle generates the bundle's rays and traces them.
func PropagateBundle(b *Bundle, elems []Element) *TraceReport {
	return PropagateRays(b.Rays(), elems)
}
