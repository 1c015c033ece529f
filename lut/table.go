// Package lut exposes CIE 1931 lightness lookup tables held in read-only data.
//
// A Table wraps a string constant produced at build time by cie1931gen (see
// package tables for the tables shipped with this module). Reading a value
// is a clamped index into that string; nothing is computed at run time.
//
//	brightness := tables.Lightness1000x255.Get(level)
//
// Tables are immutable and safe for concurrent use.
package lut

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Table is a read-only lightness lookup table with elements of type T.
// The zero Table holds no data; build one with New or MustNew.
type Table[T Unsigned] struct {
	data      region
	inputMax  uint
	outputMax uint64
	width     int
}

// New wraps existing table data. data must hold exactly (inputMax+1) elements
// of T in the layout produced by Encode. The data is not copied.
func New[T Unsigned](inputMax uint, outputMax uint64, data string) (Table[T], error) {
	p := Params{InputMax: inputMax, OutputMax: outputMax, Kind: KindOf[T]()}
	if err := p.Validate(); err != nil {
		return Table[T]{}, err
	}
	if len(data) != p.ByteLen() {
		return Table[T]{}, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrDataLength, p, p.ByteLen(), len(data))
	}
	return Table[T]{
		data:      region(data),
		inputMax:  inputMax,
		outputMax: outputMax,
		width:     p.Kind.Width(),
	}, nil
}

// MustNew is like New but panics if the data does not match the parameters.
// Generated code uses it to initialize package-level tables.
func MustNew[T Unsigned](inputMax uint, outputMax uint64, data string) Table[T] {
	t, err := New[T](inputMax, outputMax, data)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns the lightness value for a linear input.
// An index above the input maximum reads the last element.
func (t Table[T]) Get(index uint) T {
	if index > t.inputMax {
		index = t.inputMax
	}
	return T(t.data.readElement(int(index), t.width))
}

// Size is the number of elements in the table.
func (t Table[T]) Size() int {
	return int(t.inputMax) + 1
}

// All yields every index and its value in ascending index order.
func (t Table[T]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i := uint(0); i <= t.inputMax; i++ {
			if !yield(i, t.Get(i)) {
				return
			}
		}
	}
}

func (t Table[T]) Params() Params {
	return Params{InputMax: t.inputMax, OutputMax: t.outputMax, Kind: KindOf[T]()}
}

// Digest is the xxhash of the table data.
func (t Table[T]) Digest() uint64 {
	return Digest(string(t.data))
}

func (t Table[T]) ID() uuid.UUID {
	return t.Params().ID()
}

func (t Table[T]) String() string {
	return "cie1931/" + t.Params().String()
}

// Digest is the xxhash of encoded table data.
func Digest(data string) uint64 {
	return xxhash.Sum64String(data)
}
