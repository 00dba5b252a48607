package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ezrec/minisys/device"
)

func TestReadMemory(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	mem := NewMockMemory(ctrl)
	mem.EXPECT().Get(2, 3).Return([]byte{7, 8, 9}, nil)

	task := NewReadMemory(mem, 2, 3)
	assert.Equal("ReadMemoryTask", task.Name())
	assert.Equal([]byte{0, 0, 0}, task.Data.Bytes())
	assert.NotEmpty(task.ID())

	task.Execute()
	assert.NoError(task.Result)
	assert.Equal([]byte{7, 8, 9}, task.Data.Bytes())
}

func TestReadMemory_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	ram := device.NewRam(4)
	task := NewReadMemory(ram, 2, 3)

	task.Execute()
	assert.ErrorIs(task.Result, device.ErrOutOfBounds)
	assert.Equal([]byte{0, 0, 0}, task.Data.Bytes())
}

func TestReadMemory_NegativeSize(t *testing.T) {
	assert := assert.New(t)

	ram := device.NewRam(4)

	var task *ReadMemory
	assert.NotPanics(func() {
		task = NewReadMemory(ram, 0, -1)
	})
	assert.Empty(task.Data.Bytes())

	task.Execute()
	assert.ErrorIs(task.Result, device.ErrOutOfBounds)
}

func TestWriteMemory(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	data := NewData([]byte{1, 2})

	mem := NewMockMemory(ctrl)
	mem.EXPECT().Set([]byte{1, 2}, 5).Return(nil)

	task := NewWriteMemory(mem, data, 5)
	assert.Equal("WriteMemoryTask", task.Name())

	task.Execute()
	assert.NoError(task.Result)
}

func TestWriteMemory_Chained(t *testing.T) {
	assert := assert.New(t)

	ram := device.NewRam(8)
	assert.NoError(ram.Set([]byte{4, 5, 6}, 0))

	read := NewReadMemory(ram, 0, 3)
	write := NewWriteMemory(ram, read.Data, 4)

	// The write sees what the read stored, even though it was built first.
	read.Execute()
	write.Execute()

	assert.NoError(write.Result)
	assert.Equal([]byte{4, 5, 6, 0, 4, 5, 6, 0}, ram.Data)
}

func TestWriteMemory_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	ram := device.NewRam(4)
	task := NewWriteMemory(ram, NewData([]byte{1, 2, 3}), 2)

	task.Execute()
	assert.ErrorIs(task.Result, device.ErrOutOfBounds)
	assert.Equal([]byte{0, 0, 0, 0}, ram.Data)
}
