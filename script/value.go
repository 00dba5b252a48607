package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/ezrec/minisys/card"
	"github.com/ezrec/minisys/task"
)

// Task is the starlark value of a task.
type Task struct {
	task.Task
}

var (
	_ starlark.Value    = (*Task)(nil)
	_ starlark.HasAttrs = (*Task)(nil)
)

func (t *Task) String() string       { return fmt.Sprintf("<task %v>", t.Task.Name()) }
func (t *Task) Type() string         { return "task" }
func (t *Task) Freeze()              {}
func (t *Task) Truth() starlark.Bool { return starlark.True }

func (t *Task) Hash() (uint32, error) {
	return starlark.String(t.Task.ID()).Hash()
}

func (t *Task) AttrNames() []string {
	return []string{"data", "id", "name", "result"}
}

func (t *Task) Attr(name string) (value starlark.Value, err error) {
	switch name {
	case "name":
		value = starlark.String(t.Task.Name())
	case "id":
		value = starlark.String(t.Task.ID())
	case "data":
		data, ok := taskData(t.Task)
		if !ok {
			value = starlark.None
			break
		}
		value = bytesToList(data.Bytes())
	case "result":
		value = starlark.None
		if result := taskResult(t.Task); result != nil {
			value = starlark.String(result.Error())
		}
	}
	return
}

// Card is the starlark value of a communication card.
type Card struct {
	card.Card
}

var (
	_ starlark.Value    = (*Card)(nil)
	_ starlark.HasAttrs = (*Card)(nil)
)

func (c *Card) String() string        { return fmt.Sprintf("<card %v>", c.Card.Name()) }
func (c *Card) Type() string          { return "card" }
func (c *Card) Freeze()               {}
func (c *Card) Truth() starlark.Bool  { return starlark.True }
func (c *Card) Hash() (uint32, error) { return starlark.String(c.Card.Name()).Hash() }

func (c *Card) AttrNames() []string {
	return []string{"name"}
}

func (c *Card) Attr(name string) (value starlark.Value, err error) {
	if name == "name" {
		value = starlark.String(c.Card.Name())
	}
	return
}

// taskData returns the data buffer of tasks that have one.
func taskData(t task.Task) (data *task.Data, ok bool) {
	switch t := t.(type) {
	case *task.ReadMemory:
		data, ok = t.Data, true
	case *task.WriteMemory:
		data, ok = t.Data, true
	case *task.ReadCard:
		data, ok = t.Data, true
	case *task.WriteCard:
		data, ok = t.Data, true
	}
	return
}

func taskResult(t task.Task) (result error) {
	switch t := t.(type) {
	case *task.ReadMemory:
		result = t.Result
	case *task.WriteMemory:
		result = t.Result
	case *task.ReadCard:
		result = t.Result
	case *task.WriteCard:
		result = t.Result
	}
	return
}

func bytesToList(data []byte) *starlark.List {
	items := make([]starlark.Value, len(data))
	for n, b := range data {
		items[n] = starlark.MakeInt(int(b))
	}
	return starlark.NewList(items)
}

func listToBytes(value starlark.Value) (data []byte, err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrDataSource, value.Type())
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		var b int
		b, err = starlark.AsInt32(item)
		if err != nil {
			return
		}
		if b < 0 || b > 0xff {
			err = fmt.Errorf("%w: %v", ErrByteRange, b)
			return
		}
		data = append(data, byte(b))
	}

	return
}

// sourceData resolves the data source of a write task: a task shares its
// data, a list of ints makes a new buffer.
func sourceData(value starlark.Value) (data *task.Data, err error) {
	if t, ok := value.(*Task); ok {
		var found bool
		data, found = taskData(t.Task)
		if !found {
			err = fmt.Errorf("%w: %v", ErrDataSource, t.Task.Name())
		}
		return
	}

	bytes, err := listToBytes(value)
	if err != nil {
		return
	}

	data = task.NewData(bytes)

	return
}
