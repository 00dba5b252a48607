package card

import (
	"github.com/ezrec/minisys/device"
)

// OctetTransport is the Ethernet side of an EthernetCard.
type OctetTransport interface {
	Read(size int) ([]device.Octet, error)
	Write(data []device.Octet) error
}

// EthernetCard adapts an Ethernet transport to a Card.
type EthernetCard struct {
	Ethernet OctetTransport
}

var _ Card = (*EthernetCard)(nil)

// NewEthernetCard wraps eth.
func NewEthernetCard(eth OctetTransport) *EthernetCard {
	return &EthernetCard{Ethernet: eth}
}

// Receive reads size bytes. Slots never written read as zero.
func (ec *EthernetCard) Receive(size int) (data []byte, err error) {
	octets, err := ec.Ethernet.Read(size)
	if err != nil {
		return
	}

	data = make([]byte, len(octets))
	for n, octet := range octets {
		if octet.Valid {
			data[n] = octet.Value
		}
	}

	return
}

// Send writes data from the start of the transport.
func (ec *EthernetCard) Send(data []byte) error {
	return ec.Ethernet.Write(device.Octets(data...))
}

func (ec *EthernetCard) Name() string {
	return "Ethernet"
}
