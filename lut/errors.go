package lut

import "errors"

var (
	ErrEmptyDomain    = errors.New("input max must be at least 1")
	ErrEmptyRange     = errors.New("output max must be at least 1")
	ErrTableTooLarge  = errors.New("table exceeds the maximum number of entries")
	ErrUnknownKind    = errors.New("unknown element kind")
	ErrOutputOverflow = errors.New("output max does not fit the element kind")
	ErrDataLength     = errors.New("table data length does not match its parameters")
)
