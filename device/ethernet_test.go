package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEthernet_ReadBeforeWrite(t *testing.T) {
	assert := assert.New(t)

	eth := NewEthernet(4)

	data, err := eth.Read(2)
	assert.NoError(err)
	assert.Equal([]Octet{{}, {}}, data)
	assert.Equal("Ethernet{data=[null, null, null, null]}", eth.String())
}

func TestEthernet_WriteRead(t *testing.T) {
	assert := assert.New(t)

	eth := NewEthernet(10)
	err := eth.Write(Octets(1, 2, 3, 4, 5, 6, 7, 8, 9))
	assert.NoError(err)

	data, err := eth.Read(9)
	assert.NoError(err)
	assert.Equal(Octets(1, 2, 3, 4, 5, 6, 7, 8, 9), data)

	data, err = eth.Read(10)
	assert.NoError(err)
	assert.False(data[9].Valid)

	assert.Equal("Ethernet{data=[1, 2, 3, 4, 5, 6, 7, 8, 9, null]}", eth.String())
}

func TestEthernet_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	eth := NewEthernet(3)
	assert.NoError(eth.Write(Octets(7, 7, 7)))

	err := eth.Write(Octets(1, 2, 3, 4))
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(Octets(7, 7, 7), eth.Data)

	_, err = eth.Read(4)
	assert.ErrorIs(err, ErrOutOfBounds)

	_, err = eth.Read(-1)
	assert.ErrorIs(err, ErrOutOfBounds)
}
