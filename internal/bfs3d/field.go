package bfs3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/planfield/internal/monitoring"
	"github.com/banshee-data/planfield/internal/voxel"
)

// Cell classification sentinels. Any other value is a Visited distance in
// grid steps from the active goal.
const (
	// Wall marks a permanently blocked cell. It doubles as the saturating
	// distance sentinel: comparisons against real distances stay ordered
	// without special-casing.
	Wall int32 = math.MaxInt32
	// Undiscovered marks a free cell the current wavefront has not
	// reached. After a completed Run it means the goal is unreachable
	// from that cell.
	Undiscovered int32 = math.MaxInt32 - 1
)

// ErrOutOfBounds is returned by Run when the goal voxel lies outside the
// grid. The previously computed field, if any, is left intact.
var ErrOutOfBounds = errors.New("goal voxel out of grid bounds")

// Field is the distance-field engine. It owns a dense classification grid
// rebuilt on each Sync and a wavefront recomputed wholesale on each Run.
//
// Not safe for concurrent mutation; point queries are pure reads and may
// run concurrently with each other once Run has returned.
type Field struct {
	dims voxel.Dims
	conn Connectivity
	offs []voxel.Coord

	// cells holds Wall/Undiscovered sentinels or visited distances,
	// indexed by dims.Index.
	cells []int32

	// queue is the reusable FIFO frontier backing Run.
	queue []int32

	wallCount int
	hasGoal   bool
	goal      voxel.Coord

	// goalOverride is the index of a wall cell currently forced to
	// distance 0 because the active goal sits on it, or -1.
	goalOverride int
}

// New creates an engine with the given adjacency scheme. The engine is
// empty until the first Sync.
func New(conn Connectivity) *Field {
	return &Field{conn: conn, offs: conn.Offsets(), goalOverride: -1}
}

// Connectivity returns the adjacency scheme fixed at construction.
func (f *Field) Connectivity() Connectivity { return f.conn }

// Dims returns the grid dimensions of the last successful Sync.
func (f *Field) Dims() voxel.Dims { return f.dims }

// WallCount returns the number of cells classified as walls by the last
// Sync.
func (f *Field) WallCount() int { return f.wallCount }

// Goal returns the active goal voxel and whether a Run has succeeded
// since the last Sync.
func (f *Field) Goal() (voxel.Coord, bool) { return f.goal, f.hasGoal }

// Sync rebuilds the classification grid from the occupancy source: every
// voxel whose clearance is at or below threshold becomes a wall, every
// other voxel becomes undiscovered. Any prior wavefront is discarded.
//
// On error no partial grid is installed and the previous grid, if any,
// remains in place. The field is valid only for the (source, threshold)
// pair of the last Sync; obstacle edits after this point silently stale
// the field until the owner resyncs.
func (f *Field) Sync(src voxel.OccupancySource, threshold float64) error {
	dims := src.GridSize()
	if !dims.Valid() {
		return fmt.Errorf("bfs3d: invalid grid dimensions %s", dims)
	}

	cells := make([]int32, dims.Count())
	walls := 0
	i := 0
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				if src.Clearance(voxel.Coord{X: x, Y: y, Z: z}) <= threshold {
					cells[i] = Wall
					walls++
				} else {
					cells[i] = Undiscovered
				}
				i++
			}
		}
	}

	f.dims = dims
	f.cells = cells
	f.wallCount = walls
	f.hasGoal = false
	f.goalOverride = -1
	if cap(f.queue) < len(cells) {
		f.queue = make([]int32, 0, len(cells))
	}

	monitoring.Logf("bfs3d: synced %s grid: %d/%d walls (%.1f%%)",
		dims, walls, len(cells), 100*float64(walls)/float64(len(cells)))
	return nil
}

// Run floods graph-distances outward from goal until the frontier is
// exhausted. Every free cell ends either visited with its true shortest
// grid-distance to the goal, or undiscovered if no wall-free path exists.
//
// The goal cell is forced to distance 0 even when classified as a wall.
// Downstream callers rely on seeding a goal flush against an obstacle
// boundary, so this override is deliberate and must not be "fixed".
//
// An out-of-bounds goal returns ErrOutOfBounds without touching the
// field: the previous run, if any, stays queryable.
func (f *Field) Run(goal voxel.Coord) error {
	if !f.dims.Contains(goal) {
		return fmt.Errorf("bfs3d: %w: %s outside %s", ErrOutOfBounds, goal, f.dims)
	}

	// Undo a previous goal-on-wall override so the cell returns to its
	// synced wall classification, then reset the previous wavefront.
	// Walls are untouched.
	if f.goalOverride >= 0 {
		f.cells[f.goalOverride] = Wall
		f.goalOverride = -1
	}
	for i, v := range f.cells {
		if v != Wall {
			f.cells[i] = Undiscovered
		}
	}

	goalIdx := f.dims.Index(goal)
	if f.cells[goalIdx] == Wall {
		f.goalOverride = goalIdx
	}
	f.cells[goalIdx] = 0

	queue := f.queue[:0]
	queue = append(queue, int32(goalIdx))
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		c := f.dims.CoordAt(int(idx))
		next := f.cells[idx] + 1
		for _, off := range f.offs {
			n := c.Add(off)
			if !f.dims.Contains(n) {
				continue
			}
			nIdx := f.dims.Index(n)
			if f.cells[nIdx] != Undiscovered {
				continue
			}
			f.cells[nIdx] = next
			queue = append(queue, int32(nIdx))
		}
	}

	f.goal = goal
	f.hasGoal = true
	return nil
}

// InBounds reports whether c lies within the synced grid.
func (f *Field) InBounds(c voxel.Coord) bool { return f.dims.Contains(c) }

// GetDistance returns the stored classification for c: a visited distance
// in grid steps, or the Wall/Undiscovered sentinel. Callers must
// bounds-check first; the heuristic adapter clamps on their behalf.
func (f *Field) GetDistance(c voxel.Coord) int32 {
	return f.cells[f.dims.Index(c)]
}

// IsWall reports whether c was classified as blocked at the last Sync.
func (f *Field) IsWall(c voxel.Coord) bool {
	return f.cells[f.dims.Index(c)] == Wall
}

// IsUndiscovered reports whether c is free but unreached by the current
// wavefront.
func (f *Field) IsUndiscovered(c voxel.Coord) bool {
	return f.cells[f.dims.Index(c)] == Undiscovered
}

// Cells enumerates every voxel with its classification or distance, in
// index order, stopping early if visit returns false. It never mutates
// engine state and is safe to call any time after a successful Sync.
func (f *Field) Cells(visit func(c voxel.Coord, v int32) bool) {
	for i, v := range f.cells {
		if !visit(f.dims.CoordAt(i), v) {
			return
		}
	}
}
