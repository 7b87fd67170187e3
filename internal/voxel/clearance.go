package voxel

import (
	"fmt"
	"math"
)

// OccupancySource supplies per-voxel obstacle clearance and coordinate
// transforms for a fixed grid. Implementations are read-only from the
// perspective of the planning layers; the owner that populates the source
// is responsible for resyncing any derived state after obstacle edits.
type OccupancySource interface {
	// GridSize returns the voxel counts along each axis.
	GridSize() Dims
	// Resolution returns the edge length of one voxel in world units.
	Resolution() float64
	// ReferenceFrame identifies the coordinate frame of world points.
	// Opaque; passed through to diagnostics only.
	ReferenceFrame() string
	// Clearance returns the distance from the centre of voxel c to the
	// nearest obstacle, in world units. Callers must bounds-check c.
	Clearance(c Coord) float64
	// WorldToGrid maps a world point to the voxel containing it. The
	// result may be out of bounds; callers must check.
	WorldToGrid(x, y, z float64) Coord
	// GridToWorld returns the world coordinates of the centre of voxel c.
	GridToWorld(c Coord) (x, y, z float64)
}

// ClearanceGrid is a dense in-memory OccupancySource. Production deployments
// wrap a live collision-map instead; this implementation backs the CLI tool,
// snapshot replay, and tests.
type ClearanceGrid struct {
	dims      Dims
	res       float64
	originX   float64
	originY   float64
	originZ   float64
	frame     string
	clearance []float64
}

// NewClearanceGrid allocates a grid with every voxel initialised to
// +Inf clearance (fully free).
func NewClearanceGrid(dims Dims, res float64, frame string) (*ClearanceGrid, error) {
	if !dims.Valid() {
		return nil, fmt.Errorf("invalid grid dimensions %s", dims)
	}
	if res <= 0 {
		return nil, fmt.Errorf("invalid resolution %g", res)
	}
	g := &ClearanceGrid{
		dims:      dims,
		res:       res,
		frame:     frame,
		clearance: make([]float64, dims.Count()),
	}
	for i := range g.clearance {
		g.clearance[i] = math.Inf(1)
	}
	return g, nil
}

// SetOrigin places the world position of the grid's (0,0,0) corner.
func (g *ClearanceGrid) SetOrigin(x, y, z float64) {
	g.originX, g.originY, g.originZ = x, y, z
}

func (g *ClearanceGrid) GridSize() Dims         { return g.dims }
func (g *ClearanceGrid) Resolution() float64    { return g.res }
func (g *ClearanceGrid) ReferenceFrame() string { return g.frame }

func (g *ClearanceGrid) Clearance(c Coord) float64 {
	return g.clearance[g.dims.Index(c)]
}

// SetClearance overwrites the clearance of a single voxel.
func (g *ClearanceGrid) SetClearance(c Coord, v float64) {
	g.clearance[g.dims.Index(c)] = v
}

// MarkOccupied sets a voxel's clearance to zero, which classifies it as a
// wall under any non-negative threshold.
func (g *ClearanceGrid) MarkOccupied(c Coord) {
	g.SetClearance(c, 0)
}

// MarkSphere marks every voxel whose centre lies within radius world units
// of the given world point as occupied, and lowers clearance for the rest
// accordingly. Used by the CLI to build synthetic scenes.
func (g *ClearanceGrid) MarkSphere(wx, wy, wz, radius float64) {
	for i := range g.clearance {
		cx, cy, cz := g.GridToWorld(g.dims.CoordAt(i))
		d := math.Sqrt((cx-wx)*(cx-wx)+(cy-wy)*(cy-wy)+(cz-wz)*(cz-wz)) - radius
		if d < 0 {
			d = 0
		}
		if d < g.clearance[i] {
			g.clearance[i] = d
		}
	}
}

func (g *ClearanceGrid) WorldToGrid(x, y, z float64) Coord {
	return Coord{
		X: int(math.Floor((x - g.originX) / g.res)),
		Y: int(math.Floor((y - g.originY) / g.res)),
		Z: int(math.Floor((z - g.originZ) / g.res)),
	}
}

func (g *ClearanceGrid) GridToWorld(c Coord) (x, y, z float64) {
	x = g.originX + (float64(c.X)+0.5)*g.res
	y = g.originY + (float64(c.Y)+0.5)*g.res
	z = g.originZ + (float64(c.Z)+0.5)*g.res
	return x, y, z
}
