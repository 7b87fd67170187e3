package monitor

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

// fieldSlice adapts one z-slice of a distance field to the plotter's
// GridXYZ interface. Walls and undiscovered cells surface as NaN so the
// heat map leaves them blank.
type fieldSlice struct {
	dims voxel.Dims
	z    int
	vals []float64
}

func newFieldSlice(f *bfs3d.Field, z int) *fieldSlice {
	dims := f.Dims()
	s := &fieldSlice{dims: dims, z: z, vals: make([]float64, dims.X*dims.Y)}
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			v := f.GetDistance(voxel.Coord{X: x, Y: y, Z: z})
			if v == bfs3d.Wall || v == bfs3d.Undiscovered {
				s.vals[y*dims.X+x] = math.NaN()
			} else {
				s.vals[y*dims.X+x] = float64(v)
			}
		}
	}
	return s
}

func (s *fieldSlice) Dims() (c, r int)   { return s.dims.X, s.dims.Y }
func (s *fieldSlice) X(c int) float64    { return float64(c) }
func (s *fieldSlice) Y(r int) float64    { return float64(r) }
func (s *fieldSlice) Z(c, r int) float64 { return s.vals[r*s.dims.X+c] }

// SaveSliceHeatmaps writes one PNG heat map per z-slice of the field
// into outputDir (created if missing). Returns the number of files
// written.
func SaveSliceHeatmaps(f *bfs3d.Field, outputDir string) (int, error) {
	dims := f.Dims()
	if !dims.Valid() {
		return 0, fmt.Errorf("field has no synced grid")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	pal := moreland.SmoothBlueRed().Palette(255)
	written := 0
	for z := 0; z < dims.Z; z++ {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("distance field, z=%d", z)
		p.X.Label.Text = "x (voxels)"
		p.Y.Label.Text = "y (voxels)"

		hm := plotter.NewHeatMap(newFieldSlice(f, z), pal)
		p.Add(hm)

		file := filepath.Join(outputDir, fmt.Sprintf("slice_z%03d.png", z))
		if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
			return written, fmt.Errorf("save %s: %w", file, err)
		}
		written++
	}
	return written, nil
}
