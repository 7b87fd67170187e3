// Package fieldstore persists distance-field snapshots to sqlite for
// offline inspection and replay.
//
// A snapshot captures the grid geometry, tuning parameters, active goal,
// and the full cell classification blob (gob+gzip). Snapshots are a
// diagnostics feature: planning correctness never depends on this
// package.
package fieldstore
