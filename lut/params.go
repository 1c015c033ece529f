package lut

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// MaxEntries bounds the number of elements a single table may hold.
const MaxEntries = 1 << 24

// Params fully determine the contents of a table.
type Params struct {
	// InputMax is the upper bound of the linear input domain 0..InputMax.
	InputMax uint
	// OutputMax is the upper bound of the perceptual output range 0..OutputMax.
	OutputMax uint64
	Kind      Kind
}

// Validate reports every reason the parameters cannot describe a table.
func (p Params) Validate() error {
	var err error
	if p.InputMax == 0 {
		err = multierr.Append(err, ErrEmptyDomain)
	} else if p.InputMax >= MaxEntries {
		err = multierr.Append(err, fmt.Errorf("%w: %d > %d", ErrTableTooLarge, uint64(p.InputMax)+1, MaxEntries))
	}
	if p.OutputMax == 0 {
		err = multierr.Append(err, ErrEmptyRange)
	}
	if !p.Kind.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrUnknownKind, p.Kind))
	} else if p.OutputMax > p.Kind.Max() {
		err = multierr.Append(err, fmt.Errorf("%w: %d > %s max %d", ErrOutputOverflow, p.OutputMax, p.Kind, p.Kind.Max()))
	}
	return err
}

// Size is the number of elements in the table, InputMax + 1.
func (p Params) Size() int {
	return int(p.InputMax) + 1
}

// ByteLen is the number of bytes of read-only data the table occupies.
func (p Params) ByteLen() int {
	return p.Size() * p.Kind.Width()
}

// URN is the canonical textual form of the parameters.
func (p Params) URN() string {
	return fmt.Sprintf("urn:cie1931:%d:%d:%s", p.InputMax, p.OutputMax, p.Kind)
}

// ID is a name-based UUID of the parameters. It is stable across hosts and runs.
func (p Params) ID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(p.URN()))
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d/%s", p.InputMax, p.OutputMax, p.Kind)
}
