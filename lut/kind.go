package lut

import (
	"fmt"
	"math"
)

// Kind identifies the element encoding of a table.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
)

// Unsigned is the set of Go types a Table can hold.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
}

// ParseKind maps a Go type name onto its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if Kind(k) != KindInvalid && n == name {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindOf returns the Kind of T.
func KindOf[T Unsigned]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	default:
		return KindUint64
	}
}

func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Width is the number of bytes one element occupies in table data.
func (k Kind) Width() int {
	switch k {
	case KindUint8:
		return 1
	case KindUint16:
		return 2
	case KindUint32:
		return 4
	case KindUint64:
		return 8
	default:
		return 0
	}
}

// Max is the largest value an element of this Kind can represent.
func (k Kind) Max() uint64 {
	switch k {
	case KindUint8:
		return math.MaxUint8
	case KindUint16:
		return math.MaxUint16
	case KindUint32:
		return math.MaxUint32
	case KindUint64:
		return math.MaxUint64
	default:
		return 0
	}
}
