package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mpaiva/sunplot/pkg/classify"
	"github.com/mpaiva/sunplot/pkg/simulate"
	"github.com/mpaiva/sunplot/pkg/spec"
)

// DXF layer colors by AutoCAD color index.
var dxfLayers = []struct {
	name  string
	color int
}{
	{"FULL_SUN", 1},      // red
	{"PARTIAL_SHADE", 3}, // green
	{"FULL_SHADE", 5},    // blue
	{"BOUNDARY", 7},      // white/black
}

// WriteDXF writes a minimal DXF R12 planting layout: the site boundary and
// trunk footprint as circles on the BOUNDARY layer, and one POINT entity per
// sample point on the layer named after its luminosity class.
func WriteDXF(w io.Writer, res *simulate.Result, s *spec.SiteSpec) error {
	bw := bufio.NewWriter(w)
	d := dxfWriter{w: bw}

	d.tag(0, "SECTION")
	d.tag(2, "TABLES")
	d.tag(0, "TABLE")
	d.tag(2, "LAYER")
	d.tag(70, fmt.Sprint(len(dxfLayers)))
	for _, l := range dxfLayers {
		d.tag(0, "LAYER")
		d.tag(2, l.name)
		d.tag(70, "0")
		d.tag(62, fmt.Sprint(l.color))
		d.tag(6, "CONTINUOUS")
	}
	d.tag(0, "ENDTAB")
	d.tag(0, "ENDSEC")

	d.tag(0, "SECTION")
	d.tag(2, "ENTITIES")
	d.circle("BOUNDARY", s.Scene.RadiusM)
	if s.Tree.Trunk.RadiusM > 0 {
		d.circle("BOUNDARY", s.Tree.Trunk.RadiusM)
	}
	for i, p := range res.Points {
		d.tag(0, "POINT")
		d.tag(8, layerFor(res.Classes[i]))
		d.coord(p.X, p.Y)
	}
	d.tag(0, "ENDSEC")
	d.tag(0, "EOF")

	if d.err != nil {
		return fmt.Errorf("writing DXF: %w", d.err)
	}
	return bw.Flush()
}

func layerFor(c classify.Class) string {
	return strings.ToUpper(string(c))
}

// dxfWriter emits DXF group-code/value pairs, capturing the first error.
type dxfWriter struct {
	w   io.Writer
	err error
}

func (d *dxfWriter) tag(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%d\n%s\n", code, value)
}

func (d *dxfWriter) coord(x, y float64) {
	d.tag(10, fmt.Sprintf("%.3f", x))
	d.tag(20, fmt.Sprintf("%.3f", y))
}

func (d *dxfWriter) circle(layer string, radius float64) {
	d.tag(0, "CIRCLE")
	d.tag(8, layer)
	d.coord(0, 0)
	d.tag(40, fmt.Sprintf("%.3f", radius))
}
