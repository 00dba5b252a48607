package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minisys/device"
)

func TestTokenRingCard_Send(t *testing.T) {
	assert := assert.New(t)

	tr := device.NewTokenRing(10)
	tc := NewTokenRingCard(tr)
	assert.Equal("TokenRing", tc.Name())

	err := tc.Send([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.NoError(err)
	assert.Equal([]uint32{0x01020304, 0x05060708, 0x09000000}, tr.Data[:3])
	assert.Equal(make([]uint32, 7), tr.Data[3:])
}

func TestTokenRingCard_Receive(t *testing.T) {
	assert := assert.New(t)

	tr := device.NewTokenRing(4)
	tr.Data[0] = 0xcafef00d
	tr.Data[1] = 0x00000001
	tc := NewTokenRingCard(tr)

	// Size is in words.
	data, err := tc.Receive(2)
	assert.NoError(err)
	assert.Equal([]byte{0xca, 0xfe, 0xf0, 0x0d, 0, 0, 0, 1}, data)
}

func TestTokenRingCard_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	tr := device.NewTokenRing(2)
	tc := NewTokenRingCard(tr)

	// 9 bytes need 3 words.
	err := tc.Send([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.ErrorIs(err, device.ErrOutOfBounds)
	assert.Equal([]uint32{0, 0}, tr.Data)

	// 8 bytes fit exactly.
	err = tc.Send([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.NoError(err)

	_, err = tc.Receive(3)
	assert.ErrorIs(err, device.ErrOutOfBounds)
}
