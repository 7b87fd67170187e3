// Package bfs3d owns the distance-field engine at the centre of the
// planning heuristic.
//
// Responsibilities: classifying the voxel grid into walls and free cells
// from an occupancy source and a clearance threshold (Sync), flooding
// integer graph-distances outward from a goal voxel (Run), and answering
// O(1) point queries afterwards.
//
// The engine is single-threaded and blocking: Sync and Run execute to
// completion, and point queries must not overlap an in-progress Run.
// A goal change triggers a full recompute; there is no incremental reuse.
package bfs3d
