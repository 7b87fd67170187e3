package monitor

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

// Summary aggregates one field's classification and distance
// distribution for log lines and the CLI.
type Summary struct {
	Total       int
	Walls       int
	Reachable   int
	Unreachable int
	MaxDistance int32
	// MeanDistance and P95Distance cover reachable cells only. Zero
	// when nothing is reachable.
	MeanDistance float64
	P95Distance  float64
}

// Summarise walks the field once and aggregates counts and distance
// statistics.
func Summarise(f *bfs3d.Field) Summary {
	var s Summary
	var dists []float64
	f.Cells(func(_ voxel.Coord, v int32) bool {
		s.Total++
		switch v {
		case bfs3d.Wall:
			s.Walls++
		case bfs3d.Undiscovered:
			s.Unreachable++
		default:
			s.Reachable++
			if v > s.MaxDistance {
				s.MaxDistance = v
			}
			dists = append(dists, float64(v))
		}
		return true
	})
	if len(dists) > 0 {
		s.MeanDistance = stat.Mean(dists, nil)
		sort.Float64s(dists)
		s.P95Distance = stat.Quantile(0.95, stat.Empirical, dists, nil)
	}
	return s
}
