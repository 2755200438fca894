package geo

const (
	// detEpsilon rejects rays parallel to a triangle's plane. Grazing hits
	// inside this band are classified arbitrarily; callers treat them as
	// don't-care.
	detEpsilon = 1e-9

	// minHitDist rejects self-intersections at the ray origin.
	minHitDist = 1e-6
)

// Ray is a half-line with origin O and direction D. D need not be unit
// length; intersection distances are in units of |D|.
type Ray struct {
	O Vector3
	D Vector3
}

// Triangle is a single face of a mesh, vertices in arbitrary winding order.
type Triangle struct {
	A, B, C Vector3
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2
}

// IntersectTriangle tests the ray against a triangle using the
// Möller-Trumbore algorithm. It returns the parametric hit distance and true
// when the triangle lies ahead of the ray origin (t > minHitDist); hits from
// either side count.
func (r Ray) IntersectTriangle(tri Triangle) (float64, bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)

	p := r.D.Cross(e2)
	det := e1.Dot(p)
	if det > -detEpsilon && det < detEpsilon {
		return 0, false // parallel to the triangle's plane
	}
	inv := 1 / det

	s := r.O.Sub(tri.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.D.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= minHitDist {
		return 0, false // behind or at the origin
	}
	return t, true
}
