// Package render rasterizes simulation results to PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/mpaiva/sunplot/pkg/simulate"
)

// heatmapSize is the output image width and height in pixels.
const heatmapSize = 400

// viridis anchor colors, interpolated linearly in between.
var viridisStops = [][3]uint8{
	{68, 1, 84},
	{59, 82, 139},
	{33, 145, 140},
	{94, 201, 98},
	{253, 231, 37},
}

// WriteHeatmapPNG rasterizes per-point sunlit hours into a square heatmap of
// the circular site. Each pixel inside the boundary takes the value of the
// nearest sample point; pixels outside stay transparent. Returns an error
// for results with no sample points.
func WriteHeatmapPNG(w io.Writer, res *simulate.Result, radius float64) error {
	if len(res.Points) == 0 {
		return fmt.Errorf("no sample points to render")
	}

	lo, hi := res.SunHours[0], res.SunHours[0]
	for _, h := range res.SunHours {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, heatmapSize, heatmapSize))
	scale := 2 * radius / heatmapSize

	for py := 0; py < heatmapSize; py++ {
		for px := 0; px < heatmapSize; px++ {
			// Pixel center in site coordinates, y up.
			x := -radius + (float64(px)+0.5)*scale
			y := radius - (float64(py)+0.5)*scale
			if x*x+y*y >= radius*radius {
				continue
			}

			img.SetNRGBA(px, py, gradient(normalize(nearestHours(res, x, y), lo, hi)))
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding heatmap PNG: %w", err)
	}
	return nil
}

func nearestHours(res *simulate.Result, x, y float64) float64 {
	best, bestD := 0.0, math.Inf(1)
	for i, p := range res.Points {
		dx, dy := p.X-x, p.Y-y
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = res.SunHours[i], d
		}
	}
	return best
}

func normalize(v, lo, hi float64) float64 {
	if hi-lo < 1e-12 {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// gradient maps t in [0,1] to a viridis-style color.
func gradient(t float64) color.NRGBA {
	if t <= 0 {
		s := viridisStops[0]
		return color.NRGBA{s[0], s[1], s[2], 255}
	}
	if t >= 1 {
		s := viridisStops[len(viridisStops)-1]
		return color.NRGBA{s[0], s[1], s[2], 255}
	}

	seg := t * float64(len(viridisStops)-1)
	i := int(seg)
	f := seg - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + f*(float64(y)-float64(x)))
	}
	return color.NRGBA{lerp(a[0], b[0]), lerp(a[1], b[1]), lerp(a[2], b[2]), 255}
}
