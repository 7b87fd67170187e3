package bfs3d

import (
	"fmt"

	"github.com/banshee-data/planfield/internal/voxel"
)

// Connectivity selects the grid adjacency scheme used by the wavefront.
// It is fixed at engine construction and used consistently for the
// lifetime of the engine: distances computed under one scheme are not
// comparable to distances computed under another.
type Connectivity int

const (
	// Conn6 expands across faces only. This is the default: it keeps the
	// heuristic admissible against any per-cell cost model and the
	// frontier small.
	Conn6 Connectivity = 6
	// Conn18 adds edge neighbours.
	Conn18 Connectivity = 18
	// Conn26 adds corner neighbours. Tightest approximation of straight
	// line motion, at roughly 4x the neighbour work per cell.
	Conn26 Connectivity = 26
)

// ParseConnectivity maps the numeric config value to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch Connectivity(n) {
	case Conn6, Conn18, Conn26:
		return Connectivity(n), nil
	}
	return 0, fmt.Errorf("invalid connectivity %d (want 6, 18 or 26)", n)
}

// Offsets returns the neighbour offsets for the scheme. The slice is
// freshly built per call so callers can hold it without aliasing engine
// state.
func (c Connectivity) Offsets() []voxel.Coord {
	offs := make([]voxel.Coord, 0, int(c))
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				m := abs(dx) + abs(dy) + abs(dz)
				switch c {
				case Conn6:
					if m > 1 {
						continue
					}
				case Conn18:
					if m > 2 {
						continue
					}
				}
				offs = append(offs, voxel.Coord{X: dx, Y: dy, Z: dz})
			}
		}
	}
	return offs
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
