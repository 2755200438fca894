package scene

import (
	"math"

	"github.com/mpaiva/sunplot/pkg/geo"
)

// Tessellation resolution for the occluder surfaces. The canopy gets
// 2*canopyStacks*canopySlices triangles, well above the point where faceting
// shows up as abrupt steps in the occlusion masks under a moving sun.
const (
	trunkSegments = 48
	canopyStacks  = 24
	canopySlices  = 48
)

// BuildTreeMesh constructs the occluding tree surface: a capped cylinder of
// the given trunk radius and height standing on the ground plane, plus an
// ellipsoidal canopy with the given semi-axes, centered at vOffset above
// ground. The two surfaces are concatenated into one mesh; degenerate faces
// are dropped, so zero-size parameters produce an empty (non-occluding) mesh.
// Pure function of its parameters.
func BuildTreeMesh(trunkRadius, trunkHeight, canopyX, canopyY, canopyZ, vOffset float64) *geo.Mesh {
	m := geo.NewMesh()
	m.Concat(cylinderMesh(trunkRadius, trunkHeight, trunkSegments))
	m.Concat(ellipsoidMesh(canopyX, canopyY, canopyZ, geo.Vec(0, 0, vOffset)))
	return m
}

// cylinderMesh tessellates a capped cylinder sitting on z = 0, axis along z.
func cylinderMesh(radius, height float64, segments int) *geo.Mesh {
	m := geo.NewMesh()
	if radius <= 0 || height <= 0 {
		return m
	}

	ring := make([]geo.Vector3, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = geo.Vec(radius*math.Cos(a), radius*math.Sin(a), 0)
	}

	bottom := geo.Vec(0, 0, 0)
	top := geo.Vec(0, 0, height)
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		b0, b1 := ring[i], ring[j]
		t0 := geo.Vec(b0.X, b0.Y, height)
		t1 := geo.Vec(b1.X, b1.Y, height)

		// Side quad as two triangles.
		m.Add(geo.Triangle{A: b0, B: b1, C: t1})
		m.Add(geo.Triangle{A: b0, B: t1, C: t0})
		// Caps as fans around the axis.
		m.Add(geo.Triangle{A: bottom, B: b1, C: b0})
		m.Add(geo.Triangle{A: top, B: t0, C: t1})
	}
	return m
}

// ellipsoidMesh tessellates a UV sphere scaled by the three semi-axes and
// translated to center.
func ellipsoidMesh(ax, ay, az float64, center geo.Vector3) *geo.Mesh {
	m := geo.NewMesh()
	if ax <= 0 || ay <= 0 || az <= 0 {
		return m
	}

	at := func(stack, slice int) geo.Vector3 {
		// stack 0 is the south pole, canopyStacks the north pole.
		phi := math.Pi*float64(stack)/float64(canopyStacks) - math.Pi/2
		theta := 2 * math.Pi * float64(slice) / float64(canopySlices)
		return geo.Vec(
			center.X+ax*math.Cos(phi)*math.Cos(theta),
			center.Y+ay*math.Cos(phi)*math.Sin(theta),
			center.Z+az*math.Sin(phi),
		)
	}

	for st := 0; st < canopyStacks; st++ {
		for sl := 0; sl < canopySlices; sl++ {
			p00 := at(st, sl)
			p01 := at(st, sl+1)
			p10 := at(st+1, sl)
			p11 := at(st+1, sl+1)

			// Pole rows collapse one vertex; Add drops the degenerate half.
			m.Add(geo.Triangle{A: p00, B: p01, C: p11})
			m.Add(geo.Triangle{A: p00, B: p11, C: p10})
		}
	}
	return m
}
