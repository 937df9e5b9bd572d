package lenstrace

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save a spot diagram PNG after tracing
	// Compile time checks to ensure that the element interface is implemented by all required types
	_ Element = (*SphericalSurface)(nil)
	_ Element = (*OutputPlane)(nil)
)
