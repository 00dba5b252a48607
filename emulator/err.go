package emulator

import (
	"errors"

	"github.com/ezrec/minisys/translate"
)

var f = translate.From

var (
	ErrConfig = errors.New(f("invalid configuration"))
)

// ErrConfigValue reports a rejected configuration setting.
type ErrConfigValue struct {
	Key   string
	Value string
}

func (err *ErrConfigValue) Error() string {
	return f("%v: %v = '%v'", ErrConfig, err.Key, err.Value)
}

func (err *ErrConfigValue) Unwrap() error {
	return ErrConfig
}
