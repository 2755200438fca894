package simulate

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mpaiva/sunplot/pkg/ephemeris"
	"github.com/mpaiva/sunplot/pkg/geo"
	"github.com/mpaiva/sunplot/pkg/scene"
)

// Scheduler fans occlusion tests out over the timesteps of one day. The grid
// and mesh are shared read-only across all workers; each timestep is an
// independent pure task, so the parallel and sequential modes produce the
// same masks.
type Scheduler struct {
	Parallel bool
	Workers  int // 0 = one per CPU
}

// DayMasks runs the occlusion engine once per sun position and returns the
// masks indexed by timestep. A failed timestep fails the whole batch with
// enough context to reproduce it.
func (s Scheduler) DayMasks(ctx context.Context, grid scene.Grid, mesh *geo.Mesh, positions []ephemeris.Position) ([][]bool, error) {
	masks := make([][]bool, len(positions))
	if len(positions) == 0 || grid.IsEmpty() {
		for i := range masks {
			masks[i] = make([]bool, grid.Len())
		}
		return masks, nil
	}

	if !s.Parallel {
		for i, pos := range positions {
			mask, err := OcclusionMask(grid, mesh, pos.Direction())
			if err != nil {
				return nil, fmt.Errorf("timestep %d (%s): %w", i, pos.Time.Format("15:04"), err)
			}
			masks[i] = mask
		}
		return masks, nil
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pos := range positions {
		i, pos := i, pos
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			mask, err := OcclusionMask(grid, mesh, pos.Direction())
			if err != nil {
				return fmt.Errorf("timestep %d (%s): %w", i, pos.Time.Format("15:04"), err)
			}
			masks[i] = mask
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return masks, nil
}
