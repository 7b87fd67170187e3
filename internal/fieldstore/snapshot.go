package fieldstore

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/banshee-data/planfield/internal/bfs3d"
	"github.com/banshee-data/planfield/internal/voxel"
)

// serializeCells compresses the cell values using gob encoding and gzip
// compression.
func serializeCells(cells []int32) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(cells); err != nil {
		gz.Close()
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeCells decompresses and decodes a cell blob.
func DeserializeCells(blob []byte) ([]int32, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("empty cell blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var cells []int32
	dec := gob.NewDecoder(gz)
	if err := dec.Decode(&cells); err != nil {
		return nil, fmt.Errorf("failed to decode cells: %w", err)
	}
	return cells, nil
}

// Capture builds a FieldSnapshot from a synced field and its occupancy
// source. The field is read through its lazy enumeration only.
func Capture(f *bfs3d.Field, src voxel.OccupancySource, threshold float64, reason string) (*FieldSnapshot, error) {
	dims := f.Dims()
	if !dims.Valid() {
		return nil, fmt.Errorf("capture: field has no synced grid")
	}

	cells := make([]int32, 0, dims.Count())
	f.Cells(func(_ voxel.Coord, v int32) bool {
		cells = append(cells, v)
		return true
	})
	blob, err := serializeCells(cells)
	if err != nil {
		return nil, fmt.Errorf("capture: serialise cells: %w", err)
	}

	snap := &FieldSnapshot{
		Frame:              src.ReferenceFrame(),
		TakenUnixNanos:     time.Now().UnixNano(),
		DimX:               dims.X,
		DimY:               dims.Y,
		DimZ:               dims.Z,
		Resolution:         src.Resolution(),
		Connectivity:       int(f.Connectivity()),
		ClearanceThreshold: threshold,
		WallCount:          f.WallCount(),
		CellBlob:           blob,
		Reason:             reason,
	}
	if goal, ok := f.Goal(); ok {
		snap.HasGoal = true
		snap.GoalX, snap.GoalY, snap.GoalZ = goal.X, goal.Y, goal.Z
	}
	return snap, nil
}
