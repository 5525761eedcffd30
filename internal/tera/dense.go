package tera

// dense8 stores one byte per cell.
type dense8 struct {
	dims
	data []uint8
}

// NewDense8 creates a dense 8-bit array.
func NewDense8(sizeX, sizeY, sizeZ int) Array {
	return &dense8{
		dims: dims{x: sizeX, y: sizeY, z: sizeZ},
		data: make([]uint8, sizeX*sizeY*sizeZ),
	}
}

func (a *dense8) BitWidth() int { return 8 }

func (a *dense8) Get(x, y, z int) int {
	return int(a.data[a.index(x, y, z)])
}

func (a *dense8) Set(x, y, z, value int) {
	a.data[a.index(x, y, z)] = uint8(value)
}

// dense16 stores one uint16 per cell.
type dense16 struct {
	dims
	data []uint16
}

// NewDense16 creates a dense 16-bit array.
func NewDense16(sizeX, sizeY, sizeZ int) Array {
	return &dense16{
		dims: dims{x: sizeX, y: sizeY, z: sizeZ},
		data: make([]uint16, sizeX*sizeY*sizeZ),
	}
}

func (a *dense16) BitWidth() int { return 16 }

func (a *dense16) Get(x, y, z int) int {
	return int(a.data[a.index(x, y, z)])
}

func (a *dense16) Set(x, y, z, value int) {
	a.data[a.index(x, y, z)] = uint16(value)
}

// dense4 packs two cells per byte: even linear indices occupy the low
// nibble, odd indices the high nibble.
type dense4 struct {
	dims
	data []uint8
}

// NewDense4 creates a dense 4-bit array.
func NewDense4(sizeX, sizeY, sizeZ int) Array {
	cells := sizeX * sizeY * sizeZ
	return &dense4{
		dims: dims{x: sizeX, y: sizeY, z: sizeZ},
		data: make([]uint8, (cells+1)/2),
	}
}

func (a *dense4) BitWidth() int { return 4 }

func (a *dense4) Get(x, y, z int) int {
	i := a.index(x, y, z)
	return int(getNibble(a.data, i))
}

func (a *dense4) Set(x, y, z, value int) {
	i := a.index(x, y, z)
	setNibble(a.data, i, uint8(value))
}

func getNibble(data []uint8, i int) uint8 {
	if i&1 == 1 {
		return data[i>>1] >> 4
	}
	return data[i>>1] & 0xF
}

func setNibble(data []uint8, i int, v uint8) {
	v &= 0xF
	if i&1 == 1 {
		data[i>>1] = data[i>>1]&0x0F | v<<4
	} else {
		data[i>>1] = data[i>>1]&0xF0 | v
	}
}
