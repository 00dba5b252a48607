package device

import (
	"fmt"
	"iter"
	"maps"
)

// Octet is one Ethernet slot. A slot that was never written is not Valid.
type Octet struct {
	Value uint8
	Valid bool
}

// Octets wraps values as valid octets.
func Octets(values ...uint8) (octets []Octet) {
	octets = make([]Octet, len(values))
	for n, value := range values {
		octets[n] = Octet{Value: value, Valid: true}
	}
	return
}

// Ethernet is a fixed capacity byte transport. It is stream-like: reads and
// writes always start at the first slot.
type Ethernet struct {
	Data []Octet
}

var _ Device = (*Ethernet)(nil)

// NewEthernet creates a transport of size slots, none of them written.
func NewEthernet(size int) *Ethernet {
	return &Ethernet{Data: make([]Octet, size)}
}

// Capacity in bytes.
func (eth *Ethernet) Capacity() int {
	return len(eth.Data)
}

// Defines returns an iter of defines for the transport.
func (eth *Ethernet) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ETHERNET_SIZE": fmt.Sprintf("%v", len(eth.Data)),
	})
}

// Read returns the first size slots.
func (eth *Ethernet) Read(size int) (data []Octet, err error) {
	err = checkBounds("ethernet", 0, size, len(eth.Data))
	if err != nil {
		return
	}

	data = make([]Octet, size)
	copy(data, eth.Data)

	return
}

// Write stores data from the first slot onward.
func (eth *Ethernet) Write(data []Octet) (err error) {
	err = checkBounds("ethernet", 0, len(data), len(eth.Data))
	if err != nil {
		return
	}

	copy(eth.Data, data)

	return
}

func (eth *Ethernet) String() string {
	return render("Ethernet", "data", eth.Data, func(o Octet) string {
		if !o.Valid {
			return "null"
		}
		return fmt.Sprintf("%d", o.Value)
	})
}
