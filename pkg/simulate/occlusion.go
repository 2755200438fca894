// Package simulate is the sun-exposure engine: it casts rays from every
// sample point toward the sun for each timestep, collects per-timestep
// occlusion masks, and folds them into per-point sunlit hours.
package simulate

import (
	"fmt"

	"github.com/mpaiva/sunplot/pkg/geo"
	"github.com/mpaiva/sunplot/pkg/scene"
)

// OcclusionMask tests every grid point against the occluder for one sun
// direction. Entry i is true when point i sees the sun unobstructed. The
// mask is index-aligned with grid.Points and its length always equals
// grid.Len(). Points are independent; this is the unit of parallel work.
//
// A non-finite direction is a hard failure: the engine does not guess a
// substitute mask.
func OcclusionMask(grid scene.Grid, mesh *geo.Mesh, dir geo.Vector3) ([]bool, error) {
	if !dir.IsFinite() {
		return nil, fmt.Errorf("sun direction is not finite: %+v", dir)
	}

	mask := make([]bool, grid.Len())
	for i, p := range grid.Points {
		mask[i] = !mesh.Occludes(geo.Ray{O: p, D: dir})
	}
	return mask, nil
}
