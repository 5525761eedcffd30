package tera

// The sparse arrays keep one entry per y plane: either a fill value (the
// whole plane holds the same number, initially zero) or an allocated dense
// plane. The first write that differs from the fill promotes the plane.
// Chunks where an extra-data field applies to few blocks stay near-free.

// sparse8 is the 8-bit sparse array.
type sparse8 struct {
	dims
	planes [][]uint8
	fill   []uint8
}

// NewSparse8 creates a sparse 8-bit array.
func NewSparse8(sizeX, sizeY, sizeZ int) Array {
	return &sparse8{
		dims:   dims{x: sizeX, y: sizeY, z: sizeZ},
		planes: make([][]uint8, sizeY),
		fill:   make([]uint8, sizeY),
	}
}

func (a *sparse8) BitWidth() int { return 8 }

func (a *sparse8) Get(x, y, z int) int {
	if a.planes[y] == nil {
		return int(a.fill[y])
	}
	return int(a.planes[y][a.planeIndex(x, z)])
}

func (a *sparse8) Set(x, y, z, value int) {
	v := uint8(value)
	if a.planes[y] == nil {
		if v == a.fill[y] {
			return
		}
		a.planes[y] = newFilledPlane8(a.x*a.z, a.fill[y])
	}
	a.planes[y][a.planeIndex(x, z)] = v
}

// sparse16 is the 16-bit sparse array.
type sparse16 struct {
	dims
	planes [][]uint16
	fill   []uint16
}

// NewSparse16 creates a sparse 16-bit array.
func NewSparse16(sizeX, sizeY, sizeZ int) Array {
	return &sparse16{
		dims:   dims{x: sizeX, y: sizeY, z: sizeZ},
		planes: make([][]uint16, sizeY),
		fill:   make([]uint16, sizeY),
	}
}

func (a *sparse16) BitWidth() int { return 16 }

func (a *sparse16) Get(x, y, z int) int {
	if a.planes[y] == nil {
		return int(a.fill[y])
	}
	return int(a.planes[y][a.planeIndex(x, z)])
}

func (a *sparse16) Set(x, y, z, value int) {
	v := uint16(value)
	if a.planes[y] == nil {
		if v == a.fill[y] {
			return
		}
		plane := make([]uint16, a.x*a.z)
		for i := range plane {
			plane[i] = a.fill[y]
		}
		a.planes[y] = plane
	}
	a.planes[y][a.planeIndex(x, z)] = v
}

// sparse4 is the 4-bit sparse array. Allocated planes are nibble-packed.
type sparse4 struct {
	dims
	planes [][]uint8
	fill   []uint8
}

// NewSparse4 creates a sparse 4-bit array.
func NewSparse4(sizeX, sizeY, sizeZ int) Array {
	return &sparse4{
		dims:   dims{x: sizeX, y: sizeY, z: sizeZ},
		planes: make([][]uint8, sizeY),
		fill:   make([]uint8, sizeY),
	}
}

func (a *sparse4) BitWidth() int { return 4 }

func (a *sparse4) Get(x, y, z int) int {
	if a.planes[y] == nil {
		return int(a.fill[y])
	}
	return int(getNibble(a.planes[y], a.planeIndex(x, z)))
}

func (a *sparse4) Set(x, y, z, value int) {
	v := uint8(value) & 0xF
	if a.planes[y] == nil {
		if v == a.fill[y] {
			return
		}
		cells := a.x * a.z
		f := a.fill[y] & 0xF
		a.planes[y] = newFilledPlane8((cells+1)/2, f|f<<4)
	}
	setNibble(a.planes[y], a.planeIndex(x, z), v)
}

func newFilledPlane8(size int, fill uint8) []uint8 {
	plane := make([]uint8, size)
	if fill != 0 {
		for i := range plane {
			plane[i] = fill
		}
	}
	return plane
}
