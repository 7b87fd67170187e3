package voxel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClearanceGridValidation(t *testing.T) {
	_, err := NewClearanceGrid(Dims{0, 10, 10}, 0.1, "map")
	assert.Error(t, err)

	_, err = NewClearanceGrid(Dims{10, 10, 10}, 0, "map")
	assert.Error(t, err)

	g, err := NewClearanceGrid(Dims{10, 10, 10}, 0.1, "map")
	require.NoError(t, err)
	assert.Equal(t, Dims{10, 10, 10}, g.GridSize())
	assert.Equal(t, 0.1, g.Resolution())
	assert.Equal(t, "map", g.ReferenceFrame())
	assert.True(t, math.IsInf(g.Clearance(Coord{5, 5, 5}), 1))
}

func TestWorldGridRoundTrip(t *testing.T) {
	g, err := NewClearanceGrid(Dims{10, 10, 10}, 0.1, "map")
	require.NoError(t, err)
	g.SetOrigin(-0.5, 0, 2)

	for _, c := range []Coord{{0, 0, 0}, {5, 5, 0}, {9, 9, 9}, {3, 7, 1}} {
		x, y, z := g.GridToWorld(c)
		assert.Equal(t, c, g.WorldToGrid(x, y, z), "voxel centre must map back to the same voxel")
	}

	// A point just inside a voxel's lower corner belongs to that voxel.
	assert.Equal(t, Coord{0, 0, 0}, g.WorldToGrid(-0.499, 0.001, 2.001))
	// Points outside the grid map to out-of-range coordinates; callers
	// bounds-check.
	assert.False(t, g.GridSize().Contains(g.WorldToGrid(-0.6, 0, 2)))
}

func TestMarkSphere(t *testing.T) {
	g, err := NewClearanceGrid(Dims{10, 10, 10}, 0.1, "map")
	require.NoError(t, err)

	// Sphere of radius 0.15 centred on voxel (5,5,5)'s centre.
	cx, cy, cz := g.GridToWorld(Coord{5, 5, 5})
	g.MarkSphere(cx, cy, cz, 0.15)

	assert.Equal(t, 0.0, g.Clearance(Coord{5, 5, 5}))
	// A face neighbour's centre is 0.1 away, still inside the sphere.
	assert.Equal(t, 0.0, g.Clearance(Coord{6, 5, 5}))
	// Two voxels out is 0.2 from the centre: 0.05 outside the surface.
	assert.InDelta(t, 0.05, g.Clearance(Coord{7, 5, 5}), 1e-9)
	// Far corner keeps a large clearance.
	assert.Greater(t, g.Clearance(Coord{0, 0, 0}), 0.5)
}
