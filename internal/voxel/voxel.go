package voxel

import "fmt"

// Coord is an integer voxel coordinate within a grid.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Dims holds the voxel counts of a grid along each axis.
type Dims struct {
	X, Y, Z int
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}

// Valid reports whether all three dimensions are positive.
func (d Dims) Valid() bool {
	return d.X > 0 && d.Y > 0 && d.Z > 0
}

// Count returns the total number of voxels in the grid.
func (d Dims) Count() int {
	return d.X * d.Y * d.Z
}

// Contains reports whether c lies within the grid bounds.
func (d Dims) Contains(c Coord) bool {
	return c.X >= 0 && c.X < d.X &&
		c.Y >= 0 && c.Y < d.Y &&
		c.Z >= 0 && c.Z < d.Z
}

// Index converts a coordinate to its dense array index. The layout is
// x-fastest (x + y*dimX + z*dimX*dimY) and must never change once grids
// are persisted.
func (d Dims) Index(c Coord) int {
	return c.X + d.X*(c.Y+d.Y*c.Z)
}

// CoordAt inverts Index.
func (d Dims) CoordAt(idx int) Coord {
	x := idx % d.X
	idx /= d.X
	return Coord{x, idx % d.Y, idx / d.Y}
}
