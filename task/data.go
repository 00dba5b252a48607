package task

import (
	"strconv"
	"strings"
)

// Data is a byte buffer shared between tasks. It is not synchronized: only
// one task may touch a Data at a time.
type Data struct {
	bytes []byte
}

// NewData creates a Data holding data.
func NewData(data []byte) *Data {
	return &Data{bytes: data}
}

// Bytes returns the current buffer.
func (d *Data) Bytes() []byte {
	if d == nil {
		return nil
	}
	return d.bytes
}

// SetBytes replaces the current buffer.
func (d *Data) SetBytes(data []byte) {
	d.bytes = data
}

func (d *Data) String() string {
	items := make([]string, len(d.Bytes()))
	for n, b := range d.Bytes() {
		items[n] = strconv.Itoa(int(b))
	}
	return "TaskData{data=[" + strings.Join(items, ", ") + "]}"
}
