package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minisys/device"
)

func TestEthernetCard(t *testing.T) {
	assert := assert.New(t)

	eth := device.NewEthernet(10)
	ec := NewEthernetCard(eth)
	assert.Equal("Ethernet", ec.Name())

	// Unwritten slots read as zero.
	data, err := ec.Receive(3)
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 0}, data)

	err = ec.Send([]byte{1, 2, 3, 4, 5})
	assert.NoError(err)
	assert.Equal(device.Octets(1, 2, 3, 4, 5), eth.Data[:5])

	data, err = ec.Receive(7)
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4, 5, 0, 0}, data)
}

func TestEthernetCard_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	ec := NewEthernetCard(device.NewEthernet(2))

	_, err := ec.Receive(3)
	assert.ErrorIs(err, device.ErrOutOfBounds)

	err = ec.Send([]byte{1, 2, 3})
	assert.ErrorIs(err, device.ErrOutOfBounds)
}
