package lut

// region is table data held in read-only memory. Every element is stored
// little-endian, and each read primitive decodes that same layout, so the
// result does not depend on the byte order of the host.
type region string

func (r region) readElement(index, width int) uint64 {
	off := index * width
	switch width {
	case 1:
		return uint64(r.readByte(off))
	case 2:
		return uint64(r.readWord(off))
	case 4:
		return uint64(r.readDword(off))
	default:
		return r.readBytes(off, width)
	}
}

func (r region) readByte(off int) uint8 {
	return r[off]
}

func (r region) readWord(off int) uint16 {
	_ = r[off+1]
	return uint16(r[off]) | uint16(r[off+1])<<8
}

func (r region) readDword(off int) uint32 {
	_ = r[off+3]
	return uint32(r[off]) | uint32(r[off+1])<<8 | uint32(r[off+2])<<16 | uint32(r[off+3])<<24
}

// readBytes copies width bytes starting at off, one byte at a time.
func (r region) readBytes(off, width int) uint64 {
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(r[off+i])
	}
	return v
}
