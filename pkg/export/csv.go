// Package export writes simulation results to the interchange formats the
// planning workflow consumes: CSV for spreadsheets and DXF for CAD.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mpaiva/sunplot/pkg/simulate"
)

// WriteCSV writes one row per sample point: x, y, sunlit hours, and
// luminosity class, in grid order.
func WriteCSV(w io.Writer, res *simulate.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "sun_hours", "class"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, p := range res.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 3, 64),
			strconv.FormatFloat(p.Y, 'f', 3, 64),
			strconv.FormatFloat(res.SunHours[i], 'f', 3, 64),
			string(res.Classes[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
