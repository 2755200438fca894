package geo

// Mesh is an immutable triangle soup. It is built once per simulation run and
// shared read-only across all occlusion workers.
type Mesh struct {
	Triangles []Triangle
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Add appends a triangle, silently dropping degenerate (zero-area) faces so
// that downstream intersection tests never see them.
func (m *Mesh) Add(t Triangle) {
	if t.Area() < 1e-12 {
		return
	}
	m.Triangles = append(m.Triangles, t)
}

// Concat appends all triangles of another mesh. The meshes are not
// boolean-merged; co-existing surfaces are fine for occlusion testing since
// any hit counts.
func (m *Mesh) Concat(other *Mesh) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles. An empty mesh occludes
// nothing.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Occludes reports whether the ray hits any triangle of the mesh at a
// positive distance, i.e. the surface lies between the ray origin and
// wherever the ray is headed.
func (m *Mesh) Occludes(r Ray) bool {
	for _, tri := range m.Triangles {
		if _, ok := r.IntersectTriangle(tri); ok {
			return true
		}
	}
	return false
}
