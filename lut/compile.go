package lut

import (
	"encoding/binary"

	"github.com/on-the-ground/cie1931/pure"
)

// Compile computes the table described by p and returns its canonical encoding.
//
// Compile is meant for build time: generators embed its result as a string
// constant, and programs read it back through a Table.
func Compile(p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	values := pure.TabulateUpTo(p.InputMax, func(i uint) uint64 {
		return pure.Lightness(i, p.InputMax, p.OutputMax)
	})
	return Encode(p.Kind, values)
}

// Encode lays values out little-endian at the width of k.
func Encode(k Kind, values []uint64) (string, error) {
	if !k.Valid() {
		return "", ErrUnknownKind
	}
	buf := make([]byte, 0, len(values)*k.Width())
	for _, v := range values {
		if v > k.Max() {
			return "", ErrOutputOverflow
		}
		switch k {
		case KindUint8:
			buf = append(buf, uint8(v))
		case KindUint16:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		case KindUint32:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		default:
			buf = binary.LittleEndian.AppendUint64(buf, v)
		}
	}
	return string(buf), nil
}
