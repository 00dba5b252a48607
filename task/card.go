package task

import (
	"github.com/ezrec/minisys/card"
)

// ReadCard receives Size units from a card into its Data.
type ReadCard struct {
	identity
	Card   card.Card
	Size   int
	Data   *Data
	Result error
}

var _ Task = (*ReadCard)(nil)

// NewReadCard creates a ReadCard with a zeroed Data of size bytes.
func NewReadCard(c card.Card, size int) *ReadCard {
	return &ReadCard{
		identity: newIdentity(),
		Card:     c,
		Size:     size,
		Data:     NewData(make([]byte, max(size, 0))),
	}
}

func (t *ReadCard) Execute() {
	var data []byte
	data, t.Result = t.Card.Receive(t.Size)
	if t.Result != nil {
		return
	}
	t.Data.SetBytes(data)
}

func (t *ReadCard) Name() string {
	return "Read" + t.Card.Name() + "Task"
}

// WriteCard sends the bytes of Data through a card.
type WriteCard struct {
	identity
	Card   card.Card
	Data   *Data
	Result error
}

var _ Task = (*WriteCard)(nil)

// NewWriteCard creates a WriteCard sourcing its bytes from data.
func NewWriteCard(c card.Card, data *Data) *WriteCard {
	return &WriteCard{
		identity: newIdentity(),
		Card:     c,
		Data:     data,
	}
}

func (t *WriteCard) Execute() {
	t.Result = t.Card.Send(t.Data.Bytes())
}

func (t *WriteCard) Name() string {
	return "Write" + t.Card.Name() + "Task"
}
