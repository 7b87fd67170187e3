package heur

import (
	"fmt"
	"math"
	"sync"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/monitoring"
	"github.com/banshee-data/planfield/internal/voxel"
)

// MaxCost is the saturating heuristic value for states that are out of
// bounds, inside walls, or unreachable from the goal. It exceeds any
// cost producible from a reachable cell, so unreachable states are
// heuristically dominated by all reachable ones.
const MaxCost = math.MaxInt32

// Params configures a BFSHeuristic.
type Params struct {
	// ClearanceThreshold is the clearance at or below which a voxel is
	// treated as blocked, accounting for manipulator geometry.
	ClearanceThreshold float64
	// CostPerCell converts grid distance into search cost units.
	CostPerCell int
	// Connectivity is the wavefront adjacency scheme.
	Connectivity bfs3d.Connectivity
}

// BFSHeuristic estimates cost-to-go by breadth-first distance over the
// workspace grid. It owns a bfs3d.Field synced from the occupancy source
// at construction and recomputed per goal change, and resolves search
// states to voxels through a StateAnchor.
type BFSHeuristic struct {
	grid   voxel.OccupancySource
	anchor StateAnchor
	goals  GoalQuerier
	field  *bfs3d.Field

	costPerCell int
	threshold   float64

	warnStart  sync.Once
	warnFromTo sync.Once
}

var _ Heuristic = (*BFSHeuristic)(nil)
var _ Capable = (*BFSHeuristic)(nil)
var _ MetricGoalDistancer = (*BFSHeuristic)(nil)
var _ GoalObserver = (*BFSHeuristic)(nil)

// New builds the heuristic and performs the initial grid sync.
func New(grid voxel.OccupancySource, anchor StateAnchor, goals GoalQuerier, p Params) (*BFSHeuristic, error) {
	if grid == nil {
		return nil, fmt.Errorf("heur: nil occupancy source")
	}
	if anchor == nil {
		return nil, fmt.Errorf("heur: nil state anchor")
	}
	if p.CostPerCell <= 0 {
		return nil, fmt.Errorf("heur: cost per cell must be positive, got %d", p.CostPerCell)
	}
	if _, err := bfs3d.ParseConnectivity(int(p.Connectivity)); err != nil {
		return nil, fmt.Errorf("heur: %w", err)
	}

	h := &BFSHeuristic{
		grid:        grid,
		anchor:      anchor,
		goals:       goals,
		field:       bfs3d.New(p.Connectivity),
		costPerCell: p.CostPerCell,
		threshold:   p.ClearanceThreshold,
	}
	if err := h.SyncGrid(); err != nil {
		return nil, err
	}
	return h, nil
}

// SyncGrid rebuilds the wall classification from the occupancy source.
// The owner must call this after obstacle edits; the heuristic does not
// detect staleness itself. Any active goal field is discarded.
func (h *BFSHeuristic) SyncGrid() error {
	if err := h.field.Sync(h.grid, h.threshold); err != nil {
		return fmt.Errorf("heur: sync grid: %w", err)
	}
	return nil
}

// Field exposes the underlying engine for diagnostics. Read-only use
// only.
func (h *BFSHeuristic) Field() *bfs3d.Field { return h.field }

// Grid returns the occupancy source the heuristic was built over.
func (h *BFSHeuristic) Grid() voxel.OccupancySource { return h.grid }

// SetGoal reseeds the distance field at the given voxel. On failure the
// previous goal's field stays active: stale but valid beats undefined.
func (h *BFSHeuristic) SetGoal(goal voxel.Coord) error {
	monitoring.Logf("heur: setting goal voxel %s", goal)
	if err := h.field.Run(goal); err != nil {
		return fmt.Errorf("heur: set goal: %w", err)
	}
	return nil
}

// UpdateGoal is the goal-change notification entry point. Failures are
// logged and swallowed; see SetGoal.
func (h *BFSHeuristic) UpdateGoal(goal voxel.Coord) {
	if err := h.SetGoal(goal); err != nil {
		monitoring.Logf("heur: goal update rejected: %v", err)
	}
}

// GetMetricGoalDistance returns the physical distance-to-goal for a
// world point. Out-of-bounds points yield the wall sentinel scaled by
// resolution: a large but finite, deterministic value callers can order
// against reachable distances without special-casing.
func (h *BFSHeuristic) GetMetricGoalDistance(x, y, z float64) float64 {
	c := h.grid.WorldToGrid(x, y, z)
	if !h.field.InBounds(c) {
		return float64(bfs3d.Wall) * h.grid.Resolution()
	}
	return float64(h.field.GetDistance(c)) * h.grid.Resolution()
}

// GetGoalHeuristic resolves the state to a voxel and scales its grid
// distance by the per-cell cost. A state with no anchor yields 0: a
// neutral, non-informative but safe fallback. Out-of-bounds, wall, and
// unreachable voxels yield MaxCost.
func (h *BFSHeuristic) GetGoalHeuristic(stateID int) int {
	c, ok := h.anchor.Lookup(stateID)
	if !ok {
		return 0
	}
	return h.costToGoal(c)
}

// GetStartHeuristic is unsupported: the engine maintains a single
// goal-anchored field. Callers needing a start-anchored estimate require
// a second engine instance seeded at the start voxel.
func (h *BFSHeuristic) GetStartHeuristic(stateID int) int {
	h.warnStart.Do(func() {
		monitoring.Logf("heur: GetStartHeuristic unsupported, returning 0")
	})
	return 0
}

// GetFromToHeuristic delegates to GetGoalHeuristic when the destination
// is the active goal state and is otherwise unsupported, returning the
// neutral 0.
func (h *BFSHeuristic) GetFromToHeuristic(fromID, toID int) int {
	if h.goals != nil && h.goals.IsGoal(toID) {
		return h.GetGoalHeuristic(fromID)
	}
	h.warnFromTo.Do(func() {
		monitoring.Logf("heur: GetFromToHeuristic unsupported for arbitrary state pairs, returning 0")
	})
	return 0
}

// Capability implements the capability-query contract.
func (h *BFSHeuristic) Capability(tag CapabilityTag) any {
	switch tag {
	case CapMetricGoalDistance:
		return MetricGoalDistancer(h)
	case CapGoalObserver:
		return GoalObserver(h)
	}
	return nil
}

func (h *BFSHeuristic) costToGoal(c voxel.Coord) int {
	if !h.field.InBounds(c) {
		return MaxCost
	}
	d := h.field.GetDistance(c)
	if d == bfs3d.Wall || d == bfs3d.Undiscovered {
		return MaxCost
	}
	return h.costPerCell * int(d)
}
