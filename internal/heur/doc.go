// Package heur bridges the bfs3d distance field to the search algorithm.
//
// Responsibilities: the generic Heuristic contract the search dispatches
// over, the capability-query mechanism for optional extensions, the
// StateAnchor coupling from opaque search-state ids to workspace voxels,
// and BFSHeuristic, the adapter that converts grid distances into integer
// search costs with saturating sentinels.
//
// Error propagation stops at this boundary: the search algorithm always
// receives a numeric cost, never a fault.
package heur
