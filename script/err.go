package script

import (
	"errors"

	"github.com/ezrec/minisys/translate"
)

var f = translate.From

var (
	ErrScript     = errors.New(f("script"))
	ErrByteRange  = errors.New(f("byte out of range"))
	ErrDataSource = errors.New(f("not a data source"))
)

// ErrExec locates a failed scenario.
type ErrExec struct {
	Filename string
	Err      error
}

func (err *ErrExec) Error() string {
	return f("%v: %v: %v", ErrScript, err.Filename, err.Err)
}

func (err *ErrExec) Unwrap() []error {
	return []error{ErrScript, err.Err}
}
