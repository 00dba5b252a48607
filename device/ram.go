package device

import (
	"fmt"
	"iter"
	"maps"
)

// Ram is a fixed capacity, byte addressable memory.
type Ram struct {
	Data []uint8
}

var _ Device = (*Ram)(nil)

// NewRam creates a zeroed memory of size bytes.
func NewRam(size int) *Ram {
	return &Ram{Data: make([]uint8, size)}
}

// Capacity in bytes.
func (ram *Ram) Capacity() int {
	return len(ram.Data)
}

// Defines returns an iter of defines for the memory.
func (ram *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"RAM_SIZE": fmt.Sprintf("%v", len(ram.Data)),
	})
}

// Get returns a copy of size bytes starting at address.
func (ram *Ram) Get(address int, size int) (data []uint8, err error) {
	err = checkBounds("ram", address, size, len(ram.Data))
	if err != nil {
		return
	}

	data = make([]uint8, size)
	copy(data, ram.Data[address:])

	return
}

// Set writes data starting at address. Nothing is written when the range
// does not fit.
func (ram *Ram) Set(data []uint8, address int) (err error) {
	err = checkBounds("ram", address, len(data), len(ram.Data))
	if err != nil {
		return
	}

	copy(ram.Data[address:], data)

	return
}

func (ram *Ram) String() string {
	return render("Ram", "memory", ram.Data, func(b uint8) string {
		return fmt.Sprintf("%d", b)
	})
}
