package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsIndexRoundTrip(t *testing.T) {
	d := Dims{X: 4, Y: 5, Z: 6}
	seen := make(map[int]bool)
	for z := 0; z < d.Z; z++ {
		for y := 0; y < d.Y; y++ {
			for x := 0; x < d.X; x++ {
				c := Coord{X: x, Y: y, Z: z}
				idx := d.Index(c)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, d.Count())
				require.False(t, seen[idx], "index %d assigned twice", idx)
				seen[idx] = true
				assert.Equal(t, c, d.CoordAt(idx))
			}
		}
	}
	assert.Len(t, seen, d.Count())
}

func TestDimsContains(t *testing.T) {
	d := Dims{X: 3, Y: 3, Z: 3}
	tests := []struct {
		name string
		c    Coord
		want bool
	}{
		{"origin", Coord{0, 0, 0}, true},
		{"max corner", Coord{2, 2, 2}, true},
		{"x too big", Coord{3, 0, 0}, false},
		{"negative y", Coord{0, -1, 0}, false},
		{"z too big", Coord{0, 0, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Contains(tt.c))
		})
	}
}

func TestDimsValid(t *testing.T) {
	assert.True(t, Dims{1, 1, 1}.Valid())
	assert.False(t, Dims{0, 1, 1}.Valid())
	assert.False(t, Dims{1, -2, 1}.Valid())
}
