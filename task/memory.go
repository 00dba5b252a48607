package task

// Memory is byte addressable storage.
type Memory interface {
	Get(address int, size int) ([]byte, error)
	Set(data []byte, address int) error
}

// ReadMemory copies Size bytes at Address into its Data.
type ReadMemory struct {
	identity
	Memory  Memory
	Address int
	Size    int
	Data    *Data
	Result  error
}

var _ Task = (*ReadMemory)(nil)

// NewReadMemory creates a ReadMemory with a zeroed Data of size bytes.
func NewReadMemory(memory Memory, address int, size int) *ReadMemory {
	return &ReadMemory{
		identity: newIdentity(),
		Memory:   memory,
		Address:  address,
		Size:     size,
		Data:     NewData(make([]byte, max(size, 0))),
	}
}

func (t *ReadMemory) Execute() {
	var data []byte
	data, t.Result = t.Memory.Get(t.Address, t.Size)
	if t.Result != nil {
		return
	}
	t.Data.SetBytes(data)
}

func (t *ReadMemory) Name() string {
	return "ReadMemoryTask"
}

// WriteMemory stores the bytes of Data at Address.
type WriteMemory struct {
	identity
	Memory  Memory
	Address int
	Data    *Data
	Result  error
}

var _ Task = (*WriteMemory)(nil)

// NewWriteMemory creates a WriteMemory sourcing its bytes from data.
func NewWriteMemory(memory Memory, data *Data, address int) *WriteMemory {
	return &WriteMemory{
		identity: newIdentity(),
		Memory:   memory,
		Address:  address,
		Data:     data,
	}
}

func (t *WriteMemory) Execute() {
	t.Result = t.Memory.Set(t.Data.Bytes(), t.Address)
}

func (t *WriteMemory) Name() string {
	return "WriteMemoryTask"
}
