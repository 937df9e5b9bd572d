package lenstrace

// Vertex is one recorded (point, direction) pair of a ray path.
type Vertex struct {
	P Point3
	K Vector3
}

// Ray is an append-only path. It always holds at least the seed vertex.
type Ray struct {
	vertices []Vertex
}

// NewRay seeds a ray. The direction is stored as given (it does not have to be unit-length).
func NewRay(p Point3, k Vector3) *Ray {
	return &Ray{vertices: []Vertex{{P: p, K: k}}}
}

// P returns the current point.
func (r *Ray) P() Point3 { return r.vertices[len(r.vertices)-1].P }

// K returns the current direction.
func (r *Ray) K() Vector3 { return r.vertices[len(r.vertices)-1].K }

// Append records a new vertex.
func (r *Ray) Append(p Point3, k Vector3) *Ray {
	r.vertices = append(r.vertices, Vertex{P: p, K: k})
	return r
}

// Len returns the number of recorded vertices.
func (r *Ray) Len() int { return len(r.vertices) }

// Vertices returns a copy of the full history.
func (r *Ray) Vertices() []Vertex {
	out := make([]Vertex, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// Points returns a copy of the recorded points.
func (r *Ray) Points() []Point3 {
	out := make([]Point3, len(r.vertices))
	for i, v := range r.vertices {
		out[i] = v.P
	}
	return out
}

// Directions returns a copy of the recorded directions.
func (r *Ray) Directions() []Vector3 {
	out := make([]Vector3, len(r.vertices))
	for i, v := range r.vertices {
		out[i] = v.K
	}
	return out
}
