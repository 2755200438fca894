package simulate

import (
	"math"
	"testing"

	"github.com/mpaiva/sunplot/pkg/geo"
	"github.com/mpaiva/sunplot/pkg/scene"
)

func TestMaskLengthMatchesGrid(t *testing.T) {
	grid := scene.BuildGrid(10, 1)
	mesh := scene.BuildTreeMesh(0.25, 3, 2.5, 2.5, 2, 4)

	mask, err := OcclusionMask(grid, mesh, geo.Vec(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(mask) != grid.Len() {
		t.Errorf("mask length %d, grid length %d", len(mask), grid.Len())
	}
}

func TestZeroOccluderAllSunlit(t *testing.T) {
	grid := scene.BuildGrid(10, 2)
	empty := scene.BuildTreeMesh(0, 0, 0, 0, 0, 0)

	for _, dir := range []geo.Vector3{
		geo.Vec(0, 0, 1),
		geo.Vec(0.5, 0.5, 0.1).Normalize(),
		geo.Vec(-0.3, 0.8, 0.7).Normalize(),
	} {
		mask, err := OcclusionMask(grid, empty, dir)
		if err != nil {
			t.Fatal(err)
		}
		for i, sunlit := range mask {
			if !sunlit {
				t.Fatalf("dir %+v: point %d occluded by an empty mesh", dir, i)
			}
		}
	}
}

func TestShadowFallsOppositeTheSun(t *testing.T) {
	grid := scene.Grid{Points: []geo.Vector3{
		geo.Vec(0, 3, 0),  // north of the tree
		geo.Vec(0, -3, 0), // south of the tree
	}}
	mesh := scene.BuildTreeMesh(0.25, 3, 2.5, 2.5, 2, 4)

	// Sun low in the south: the northern point's ray to the sun passes
	// through the tree; the southern point looks away from it.
	south := sunDirection(t, 180, 25)
	mask, err := OcclusionMask(grid, mesh, south)
	if err != nil {
		t.Fatal(err)
	}
	if mask[0] {
		t.Error("point north of the tree should be shaded by a low southern sun")
	}
	if !mask[1] {
		t.Error("point south of the tree should see a low southern sun")
	}
}

// sunDirection builds a unit sun vector from degrees, as the resolver does.
func sunDirection(t *testing.T, azDeg, elDeg float64) geo.Vector3 {
	t.Helper()
	az := azDeg * math.Pi / 180
	el := elDeg * math.Pi / 180
	return geo.Vec(math.Sin(az)*math.Cos(el), math.Cos(az)*math.Cos(el), math.Sin(el))
}

func TestHighSunShrinksShadow(t *testing.T) {
	grid := scene.Grid{Points: []geo.Vector3{geo.Vec(0, 8, 0)}}
	mesh := scene.BuildTreeMesh(0.25, 3, 2.5, 2.5, 2, 4)

	// From 8m north of the trunk, a near-zenith southern sun clears the
	// canopy while a low one does not.
	low, err := OcclusionMask(grid, mesh, sunDirection(t, 180, 15))
	if err != nil {
		t.Fatal(err)
	}
	high, err := OcclusionMask(grid, mesh, sunDirection(t, 180, 80))
	if err != nil {
		t.Fatal(err)
	}
	if low[0] {
		t.Error("distant point should be shaded under a low sun")
	}
	if !high[0] {
		t.Error("distant point should be sunlit under a high sun")
	}
}

func TestNonFiniteDirectionFails(t *testing.T) {
	grid := scene.BuildGrid(5, 1)
	mesh := scene.BuildTreeMesh(0.25, 3, 2.5, 2.5, 2, 4)

	if _, err := OcclusionMask(grid, mesh, geo.Vec(math.NaN(), 0, 1)); err == nil {
		t.Error("expected error for NaN direction")
	}
}

func TestEmptyGridEmptyMask(t *testing.T) {
	mesh := scene.BuildTreeMesh(0.25, 3, 2.5, 2.5, 2, 4)
	mask, err := OcclusionMask(scene.Grid{}, mesh, geo.Vec(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(mask) != 0 {
		t.Errorf("expected empty mask, got %d entries", len(mask))
	}
}
