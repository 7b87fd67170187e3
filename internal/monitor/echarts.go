package monitor

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

// RenderSliceHTML writes an interactive heat map of one z-slice to w.
// A debugging view only: no auth, no state mutation.
func RenderSliceHTML(f *bfs3d.Field, z int, w io.Writer) error {
	dims := f.Dims()
	if !dims.Valid() {
		return fmt.Errorf("field has no synced grid")
	}
	if z < 0 || z >= dims.Z {
		return fmt.Errorf("slice z=%d outside grid %s", z, dims)
	}

	data := make([]opts.HeatMapData, 0, dims.X*dims.Y)
	maxDist := int32(0)
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			v := f.GetDistance(voxel.Coord{X: x, Y: y, Z: z})
			if v == bfs3d.Wall || v == bfs3d.Undiscovered {
				continue
			}
			if v > maxDist {
				maxDist = v
			}
			data = append(data, opts.HeatMapData{Value: []interface{}{x, y, v}})
		}
	}

	xLabels := make([]string, dims.X)
	for x := range xLabels {
		xLabels[x] = strconv.Itoa(x)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("distance field %s, slice z=%d", dims, z),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        0,
			Max:        float32(maxDist),
			Calculable: opts.Bool(true),
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("distance", data)
	return hm.Render(w)
}
