package device

import (
	"errors"

	"github.com/ezrec/minisys/translate"
)

var f = translate.From

var (
	// ErrOutOfBounds is the only device error kind: the requested range
	// does not fit in the device.
	ErrOutOfBounds = errors.New(f("out of bounds"))
)

// ErrBounds describes a rejected device access.
type ErrBounds struct {
	Device   string
	Offset   int
	Size     int
	Capacity int
}

func (err *ErrBounds) Error() string {
	return f("%v: %v (offset %v, size %v, capacity %v)",
		err.Device, ErrOutOfBounds, err.Offset, err.Size, err.Capacity)
}

func (err *ErrBounds) Unwrap() error {
	return ErrOutOfBounds
}
