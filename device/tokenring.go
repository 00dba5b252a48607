package device

import (
	"fmt"
	"iter"
	"maps"
)

// TokenRing is a fixed capacity transport of 32-bit words. Like Ethernet it
// always transfers from the first word.
type TokenRing struct {
	Data []uint32
}

var _ Device = (*TokenRing)(nil)

// NewTokenRing creates a transport of size words.
func NewTokenRing(size int) *TokenRing {
	return &TokenRing{Data: make([]uint32, size)}
}

// Capacity in words.
func (tr *TokenRing) Capacity() int {
	return len(tr.Data)
}

// Defines returns an iter of defines for the transport.
func (tr *TokenRing) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TOKEN_RING_SIZE":  fmt.Sprintf("%v", len(tr.Data)),
		"TOKEN_RING_BYTES": fmt.Sprintf("%v", len(tr.Data)*4),
	})
}

// Receive returns the first size words.
func (tr *TokenRing) Receive(size int) (data []uint32, err error) {
	err = checkBounds("token ring", 0, size, len(tr.Data))
	if err != nil {
		return
	}

	data = make([]uint32, size)
	copy(data, tr.Data)

	return
}

// Send stores data from the first word onward.
func (tr *TokenRing) Send(data []uint32) (err error) {
	err = checkBounds("token ring", 0, len(data), len(tr.Data))
	if err != nil {
		return
	}

	copy(tr.Data, data)

	return
}

func (tr *TokenRing) String() string {
	return render("TokenRing", "data", tr.Data, func(w uint32) string {
		return fmt.Sprintf("%d", w)
	})
}
