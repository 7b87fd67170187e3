package heur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/planfield/internal/voxel"
)

func TestWallMarkers(t *testing.T) {
	grid := emptyScene(t, voxel.Dims{X: 3, Y: 3, Z: 3}, 0.1)
	grid.MarkOccupied(voxel.Coord{X: 1, Y: 1, Z: 1})
	grid.MarkOccupied(voxel.Coord{X: 2, Y: 0, Z: 2})
	h := makeHeuristic(t, grid, mapAnchor{}, nil)

	markers := h.WallMarkers()
	require.Len(t, markers, 2)
	for _, m := range markers {
		assert.Equal(t, "planning", m.Frame)
		assert.Equal(t, 0.1, m.Scale)
	}
	// First wall in index order is (1,1,1); its centre is at 0.15 on
	// each axis.
	assert.InDelta(t, 0.15, markers[0].X, 1e-9)
	assert.InDelta(t, 0.15, markers[0].Y, 1e-9)
	assert.InDelta(t, 0.15, markers[0].Z, 1e-9)
}

func TestValueMarkersSkipWallsAndUnreached(t *testing.T) {
	grid := emptyScene(t, voxel.Dims{X: 3, Y: 3, Z: 1}, 0.1)
	grid.MarkOccupied(voxel.Coord{X: 1, Y: 1, Z: 0})
	h := makeHeuristic(t, grid, mapAnchor{}, nil)

	// Before any run nothing is visited.
	assert.Empty(t, h.ValueMarkers())

	require.NoError(t, h.SetGoal(voxel.Coord{X: 0, Y: 0, Z: 0}))
	markers := h.ValueMarkers()
	// 9 cells, one wall, all free cells reachable.
	require.Len(t, markers, 8)

	labels := make(map[string]int)
	for _, m := range markers {
		labels[m.Label]++
	}
	assert.Equal(t, 1, labels["0"], "exactly one goal cell")
	assert.Equal(t, 2, labels["1"])
	assert.Equal(t, 1, labels["4"], "opposite corner detours around the wall")
}

func TestMarkersDoNotMutateField(t *testing.T) {
	grid := emptyScene(t, voxel.Dims{X: 3, Y: 3, Z: 3}, 0.1)
	grid.MarkOccupied(voxel.Coord{X: 1, Y: 0, Z: 0})
	h := makeHeuristic(t, grid, mapAnchor{1: {X: 2, Y: 2, Z: 2}}, nil)
	require.NoError(t, h.SetGoal(voxel.Coord{X: 0, Y: 0, Z: 0}))
	want := h.GetGoalHeuristic(1)

	h.WallMarkers()
	h.ValueMarkers()
	assert.Equal(t, want, h.GetGoalHeuristic(1))
}
