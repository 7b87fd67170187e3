package heur

import "github.com/banshee-data/planfield/internal/voxel"

// Heuristic is the contract the search algorithm dispatches over. Every
// implementation must be usable polymorphically: the search never needs
// static knowledge of the concrete type.
type Heuristic interface {
	// GetGoalHeuristic estimates the remaining cost from the state to
	// the active goal.
	GetGoalHeuristic(stateID int) int
	// GetStartHeuristic estimates the cost from the start to the state.
	GetStartHeuristic(stateID int) int
	// GetFromToHeuristic estimates the cost between two states.
	GetFromToHeuristic(fromID, toID int) int
}

// CapabilityTag names an optional extension a Heuristic implementation
// may expose. Callers discover extensions at composition time through the
// Capable interface instead of type-switching on concrete types.
type CapabilityTag string

const (
	// CapMetricGoalDistance exposes MetricGoalDistancer.
	CapMetricGoalDistance CapabilityTag = "metric-goal-distance"
	// CapGoalObserver exposes GoalObserver.
	CapGoalObserver CapabilityTag = "goal-observer"
)

// Capable is the capability-query mechanism. Capability returns the
// extension value for a recognised tag, or nil.
type Capable interface {
	Capability(tag CapabilityTag) any
}

// MetricGoalDistancer answers physical-unit distance queries against the
// active goal for world-space points.
type MetricGoalDistancer interface {
	GetMetricGoalDistance(x, y, z float64) float64
}

// GoalObserver receives goal-change notifications from the planning
// space.
type GoalObserver interface {
	UpdateGoal(goal voxel.Coord)
}

// StateAnchor maps an opaque search-state id to the workspace voxel the
// state is anchored at. A state may have no anchor (ok false), e.g. an
// abstract state not tied to a workspace point.
type StateAnchor interface {
	Lookup(stateID int) (voxel.Coord, bool)
}

// GoalQuerier is the search space's own goal predicate, consulted by
// GetFromToHeuristic.
type GoalQuerier interface {
	IsGoal(stateID int) bool
}
