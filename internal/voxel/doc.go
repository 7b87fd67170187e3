// Package voxel owns the discretised workspace model shared by the
// planning heuristic layers.
//
// Responsibilities: integer voxel coordinates and grid dimensions, dense
// index math, the OccupancySource contract supplying per-voxel obstacle
// clearance, and ClearanceGrid, an in-memory OccupancySource used by
// tools and tests.
//
// Dependency rule: voxel depends on nothing above it. The field engine
// and heuristic adapter import voxel, never the other way round.
package voxel
