package heur

import (
	"strconv"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

// Marker is one world-space diagnostic primitive: a cube for a wall cell
// or a labelled value for a visited cell. Consumed by rendering code
// only; producing markers never mutates engine state.
type Marker struct {
	X, Y, Z  float64
	Frame    string
	Label    string
	Distance int32
	// Scale is the cube edge length for wall markers, in world units.
	Scale float64
}

// WallMarkers enumerates every wall cell as a cube centred on the voxel,
// sized to the grid resolution.
func (h *BFSHeuristic) WallMarkers() []Marker {
	frame := h.grid.ReferenceFrame()
	res := h.grid.Resolution()
	var out []Marker
	h.field.Cells(func(c voxel.Coord, v int32) bool {
		if v != bfs3d.Wall {
			return true
		}
		x, y, z := h.grid.GridToWorld(c)
		out = append(out, Marker{X: x, Y: y, Z: z, Frame: frame, Scale: res})
		return true
	})
	return out
}

// ValueMarkers enumerates every visited cell with its distance as a text
// label. Walls and undiscovered cells are skipped.
func (h *BFSHeuristic) ValueMarkers() []Marker {
	frame := h.grid.ReferenceFrame()
	var out []Marker
	h.field.Cells(func(c voxel.Coord, v int32) bool {
		if v == bfs3d.Wall || v == bfs3d.Undiscovered {
			return true
		}
		x, y, z := h.grid.GridToWorld(c)
		out = append(out, Marker{
			X: x, Y: y, Z: z,
			Frame:    frame,
			Label:    strconv.Itoa(int(v)),
			Distance: v,
		})
		return true
	})
	return out
}
