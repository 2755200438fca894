package scene

import "github.com/mpaiva/sunplot/pkg/geo"

// Grid is the ordered set of sample points for one simulation run. Points lie
// strictly inside the circular site boundary, on a square lattice, at z = 0.
// Downstream vectors (occlusion masks, sun-hour totals) are index-aligned
// with Points.
type Grid struct {
	Points     []geo.Vector3 `json:"points"`
	Radius     float64       `json:"radius"`
	Resolution float64       `json:"resolution"`
}

// Len returns the number of sample points.
func (g Grid) Len() int {
	return len(g.Points)
}

// IsEmpty reports whether the grid has no sample points. An empty grid is a
// valid "no samples" condition, not a fault.
func (g Grid) IsEmpty() bool {
	return len(g.Points) == 0
}

// BuildGrid discretizes the circular site of the given radius into lattice
// points spaced by resolution, starting at the bounding-box minimum and
// keeping only points strictly inside the circle. Ordering is row-major over
// x then y, so repeated builds with the same parameters yield the same
// sequence.
func BuildGrid(radius, resolution float64) Grid {
	g := Grid{Radius: radius, Resolution: resolution}
	if radius <= 0 || resolution <= 0 {
		return g
	}

	r2 := radius * radius
	// Step by lattice index rather than accumulating x += resolution, which
	// drifts over many steps.
	n := int(2 * radius / resolution)
	for i := 0; i <= n; i++ {
		x := -radius + float64(i)*resolution
		if x >= radius {
			break
		}
		for j := 0; j <= n; j++ {
			y := -radius + float64(j)*resolution
			if y >= radius {
				break
			}
			if x*x+y*y < r2 {
				g.Points = append(g.Points, geo.Vec(x, y, 0))
			}
		}
	}
	return g
}

// Subsample returns a grid containing every stride-th point, preserving
// order. Stride 1 (or less) returns the grid unchanged. Used by the
// constrained simulation profile.
func (g Grid) Subsample(stride int) Grid {
	if stride <= 1 || g.IsEmpty() {
		return g
	}
	out := Grid{Radius: g.Radius, Resolution: g.Resolution}
	for i := 0; i < len(g.Points); i += stride {
		out.Points = append(out.Points, g.Points[i])
	}
	return out
}
