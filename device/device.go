// Package device provides the simulated hardware of the minisys computer:
// byte addressable memory (Ram), a byte oriented transport (Ethernet) and a
// 32-bit word oriented transport (TokenRing).
//
// Every access is bounds checked before any data is copied. An access that
// does not fit the device returns an error wrapping ErrOutOfBounds, and the
// device contents are left untouched.
package device

import (
	"fmt"
	"iter"
	"strings"
)

// Device is the part of a simulated device that is common to all kinds.
type Device interface {
	fmt.Stringer
	// Capacity returns the number of addressable slots.
	Capacity() int
	// Defines returns the device constants, for scripts and listings.
	Defines() iter.Seq2[string, string]
}

// checkBounds verifies that [offset, offset+size) lies within [0, capacity).
func checkBounds(device string, offset int, size int, capacity int) (err error) {
	if offset < 0 || size < 0 || offset > capacity || size > capacity-offset {
		err = &ErrBounds{
			Device:   device,
			Offset:   offset,
			Size:     size,
			Capacity: capacity,
		}
	}
	return
}

// render formats a device as "<name>{<field>=[a, b, c]}".
func render[T any](name string, field string, data []T, format func(T) string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("{")
	sb.WriteString(field)
	sb.WriteString("=[")
	for n, item := range data {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(format(item))
	}
	sb.WriteString("]}")
	return sb.String()
}
