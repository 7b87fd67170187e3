package fieldstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fields.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func makeRunField(t *testing.T) (*bfs3d.Field, *voxel.ClearanceGrid) {
	t.Helper()
	grid, err := voxel.NewClearanceGrid(voxel.Dims{X: 6, Y: 6, Z: 6}, 0.05, "planning")
	require.NoError(t, err)
	grid.MarkOccupied(voxel.Coord{X: 3, Y: 3, Z: 3})
	f := bfs3d.New(bfs3d.Conn6)
	require.NoError(t, f.Sync(grid, 0.01))
	require.NoError(t, f.Run(voxel.Coord{X: 0, Y: 0, Z: 0}))
	return f, grid
}

func TestCellBlobRoundTrip(t *testing.T) {
	cells := []int32{0, 1, 2, bfs3d.Wall, bfs3d.Undiscovered, 7}
	blob, err := serializeCells(cells)
	require.NoError(t, err)

	got, err := DeserializeCells(blob)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cells, got))

	_, err = DeserializeCells(nil)
	assert.Error(t, err)
}

func TestCaptureRequiresSyncedField(t *testing.T) {
	_, err := Capture(bfs3d.New(bfs3d.Conn6), nil, 0.01, "manual")
	assert.Error(t, err)
}

func TestInsertAndLatest(t *testing.T) {
	s := openTestStore(t)
	f, grid := makeRunField(t)

	snap, err := Capture(f, grid, 0.01, "settling_complete")
	require.NoError(t, err)
	require.NoError(t, s.Insert(snap))
	assert.NotEmpty(t, snap.SnapshotID, "insert assigns a uuid")

	got, err := s.Latest("planning")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.SnapshotID, got.SnapshotID)
	assert.Equal(t, 6, got.DimX)
	assert.Equal(t, 0.05, got.Resolution)
	assert.Equal(t, 6, got.Connectivity)
	assert.Equal(t, 1, got.WallCount)
	assert.True(t, got.HasGoal)
	assert.Equal(t, 0, got.GoalX)
	assert.Equal(t, "settling_complete", got.Reason)

	cells, err := DeserializeCells(got.CellBlob)
	require.NoError(t, err)
	require.Len(t, cells, 6*6*6)
	assert.Equal(t, int32(0), cells[0], "goal cell at index 0")

	missing, err := s.Latest("other-frame")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	f, grid := makeRunField(t)

	for i, reason := range []string{"first", "second", "third"} {
		snap, err := Capture(f, grid, 0.01, reason)
		require.NoError(t, err)
		snap.TakenUnixNanos = time.Now().UnixNano() + int64(i)
		require.NoError(t, s.Insert(snap))
	}

	snaps, err := s.List("planning", 2)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "third", snaps[0].Reason)
	assert.Equal(t, "second", snaps[1].Reason)
}
