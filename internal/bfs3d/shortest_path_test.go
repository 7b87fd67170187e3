package bfs3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/banshee-data/planfield/internal/voxel"
)

// referenceDistances computes shortest grid-distances from goal with an
// independent Dijkstra over the same adjacency graph. Unreachable cells
// and walls map to +Inf.
func referenceDistances(f *Field, goal voxel.Coord) []float64 {
	dims := f.Dims()
	g := simple.NewUndirectedGraph()
	for i := 0; i < dims.Count(); i++ {
		if !f.IsWall(dims.CoordAt(i)) {
			g.AddNode(simple.Node(i))
		}
	}
	offs := f.Connectivity().Offsets()
	for i := 0; i < dims.Count(); i++ {
		c := dims.CoordAt(i)
		if f.IsWall(c) {
			continue
		}
		for _, off := range offs {
			n := c.Add(off)
			if !dims.Contains(n) || f.IsWall(n) {
				continue
			}
			j := dims.Index(n)
			if j > i {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	shortest := path.DijkstraFrom(g.Node(int64(dims.Index(goal))), g)
	out := make([]float64, dims.Count())
	for i := range out {
		if f.IsWall(dims.CoordAt(i)) {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = shortest.WeightTo(int64(i))
	}
	return out
}

// TestShortestPathMatchesReference checks the wavefront against an
// independent Dijkstra on random wall masks, for multiple connectivity
// schemes and seeds.
func TestShortestPathMatchesReference(t *testing.T) {
	dims := voxel.Dims{X: 8, Y: 7, Z: 6}
	goal := voxel.Coord{X: 1, Y: 2, Z: 3}

	for _, conn := range []Connectivity{Conn6, Conn18, Conn26} {
		for _, seed := range []int64{1, 7, 42} {
			f := randomWallGrid(t, dims, conn, goal, 0.3, seed)
			require.NoError(t, f.Run(goal))
			want := referenceDistances(f, goal)

			f.Cells(func(c voxel.Coord, v int32) bool {
				i := dims.Index(c)
				switch {
				case v == Wall:
					require.True(t, math.IsInf(want[i], 1))
				case v == Undiscovered:
					require.True(t, math.IsInf(want[i], 1),
						"conn=%d seed=%d: %s marked unreachable but reference found a path of %g",
						conn, seed, c, want[i])
				default:
					require.Equal(t, float64(v), want[i],
						"conn=%d seed=%d: wrong distance at %s", conn, seed, c)
				}
				return true
			})
		}
	}
}
