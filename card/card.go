// Package card adapts the minisys transports to one byte oriented
// communication card interface.
//
// EthernetCard passes bytes straight through to an Ethernet transport.
// TokenRingCard converts between bytes and the 32-bit big-endian words
// carried by a TokenRing.
package card

// Card is a byte oriented communication card.
type Card interface {
	// Receive reads size units from the transport, as bytes.
	Receive(size int) (data []byte, err error)
	// Send writes data to the transport.
	Send(data []byte) (err error)
	// Name of the transport kind, such as "Ethernet".
	Name() string
}
