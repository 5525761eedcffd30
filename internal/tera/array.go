// Package tera provides fixed-size 3D per-block value arrays in 4, 8 and
// 16 bit widths, plus the factory table the slot allocator consumes.
//
// Arrays are indexed y-major: one horizontal plane per y level, rows along z,
// cells along x. Values written to an array are masked to its bit width.
package tera

import "sort"

// Array is a fixed-capacity 3D array of small unsigned values.
type Array interface {
	SizeX() int
	SizeY() int
	SizeZ() int

	// BitWidth returns the number of bits stored per cell.
	BitWidth() int

	// Get returns the value at (x, y, z). Coordinates must be in range.
	Get(x, y, z int) int

	// Set stores value at (x, y, z), masked to the array's bit width.
	Set(x, y, z, value int)
}

// Factory constructs an array of fixed bit width with the given dimensions.
type Factory func(sizeX, sizeY, sizeZ int) Array

// FactoryTable maps a supported bit width to the factory for that width.
// It is passed explicitly to the slot allocator; there is no package-level
// default table that callers can mutate.
type FactoryTable map[int]Factory

// Widths returns the table's bit widths in ascending order. The slot
// allocator processes width groups in this order, which keeps slot indices
// stable across runs.
func (t FactoryTable) Widths() []int {
	widths := make([]int, 0, len(t))
	for w := range t {
		widths = append(widths, w)
	}
	sort.Ints(widths)
	return widths
}

// DefaultFactories returns the standard table of sparse array factories for
// the supported widths 4, 8 and 16.
func DefaultFactories() FactoryTable {
	return FactoryTable{
		4:  NewSparse4,
		8:  NewSparse8,
		16: NewSparse16,
	}
}

// dims carries array dimensions and the shared linear index math.
type dims struct {
	x, y, z int
}

func (d dims) SizeX() int { return d.x }
func (d dims) SizeY() int { return d.y }
func (d dims) SizeZ() int { return d.z }

// planeIndex returns the offset of (x, z) within one y plane.
func (d dims) planeIndex(x, z int) int {
	return z*d.x + x
}

// index returns the linear offset of (x, y, z) in a dense backing slice.
func (d dims) index(x, y, z int) int {
	return y*d.x*d.z + d.planeIndex(x, z)
}
