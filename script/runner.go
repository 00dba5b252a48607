package script

import (
	"fmt"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/minisys/device"
	"github.com/ezrec/minisys/emulator"
	"github.com/ezrec/minisys/task"
)

// Runner executes scenarios against one emulator.
type Runner struct {
	Emulator *emulator.Emulator
	Print    func(msg string) // Output of print(); logged when nil.
}

// NewRunner creates a runner for emu.
func NewRunner(emu *emulator.Emulator) *Runner {
	return &Runner{Emulator: emu}
}

// Exec runs the scenario src (a string, []byte or io.Reader; the file
// named filename when nil). It returns the scenario's globals.
func (r *Runner) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if r.Print != nil {
				r.Print(msg)
				return
			}
			r.Emulator.Logger.Info("script: print", "file", filename, "msg", msg)
		},
	}

	predeclared, err := r.predeclared()
	if err != nil {
		return
	}

	opts := syntax.FileOptions{
		Set:            true,
		GlobalReassign: true,
	}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		err = &ErrExec{Filename: filename, Err: err}
		return
	}

	return
}

func (r *Runner) predeclared() (dict starlark.StringDict, err error) {
	emu := r.Emulator

	dict = starlark.StringDict{
		"ethernet_card":   &Card{Card: emu.EthernetCard},
		"token_ring_card": &Card{Card: emu.TokenRingCard},
	}

	for key, str := range emu.Defines() {
		var value int
		value, err = strconv.Atoi(str)
		if err != nil {
			// Only integer defines are exposed.
			err = nil
			continue
		}
		dict[key] = starlark.MakeInt(value)
	}

	builtins := map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
		"ram_set":         r.ramSet,
		"ram_get":         r.ramGet,
		"ethernet_write":  r.ethernetWrite,
		"token_ring_send": r.tokenRingSend,
		"read_memory":     r.readMemory,
		"write_memory":    r.writeMemory,
		"read_card":       r.readCard,
		"write_card":      r.writeCard,
		"composite":       r.composite,
		"enqueue":         r.enqueue,
		"run":             r.run,
		"event_log":       r.eventLog,
		"state":           r.state,
	}

	for name, fn := range builtins {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

func (r *Runner) ramSet(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var list starlark.Value
	var address int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "data", &list, "address", &address); err != nil {
		return nil, err
	}

	data, err := listToBytes(list)
	if err != nil {
		return nil, err
	}

	if err := r.Emulator.Ram.Set(data, address); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (r *Runner) ramGet(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address, size int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address, "size", &size); err != nil {
		return nil, err
	}

	data, err := r.Emulator.Ram.Get(address, size)
	if err != nil {
		return nil, err
	}

	return bytesToList(data), nil
}

func (r *Runner) ethernetWrite(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var list starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "data", &list); err != nil {
		return nil, err
	}

	data, err := listToBytes(list)
	if err != nil {
		return nil, err
	}

	if err := r.Emulator.Ethernet.Write(device.Octets(data...)); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (r *Runner) tokenRingSend(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var list *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "words", &list); err != nil {
		return nil, err
	}

	words := make([]uint32, list.Len())
	for n := range list.Len() {
		var word uint32
		if err := starlark.AsInt(list.Index(n), &word); err != nil {
			return nil, err
		}
		words[n] = word
	}

	if err := r.Emulator.TokenRing.Send(words); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (r *Runner) readMemory(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address, size int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address, "size", &size); err != nil {
		return nil, err
	}

	return &Task{Task: task.NewReadMemory(r.Emulator.Ram, address, size)}, nil
}

func (r *Runner) writeMemory(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source starlark.Value
	var address int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source, "address", &address); err != nil {
		return nil, err
	}

	data, err := sourceData(source)
	if err != nil {
		return nil, err
	}

	return &Task{Task: task.NewWriteMemory(r.Emulator.Ram, data, address)}, nil
}

func (r *Runner) readCard(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var c *Card
	var size int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "card", &c, "size", &size); err != nil {
		return nil, err
	}

	return &Task{Task: task.NewReadCard(c.Card, size)}, nil
}

func (r *Runner) writeCard(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var c *Card
	var source starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "card", &c, "source", &source); err != nil {
		return nil, err
	}

	data, err := sourceData(source)
	if err != nil {
		return nil, err
	}

	return &Task{Task: task.NewWriteCard(c.Card, data)}, nil
}

func (r *Runner) composite(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	tasks := make([]task.Task, len(args))
	for n, arg := range args {
		t, ok := arg.(*Task)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d: want task, got %s", b.Name(), n+1, arg.Type())
		}
		tasks[n] = t.Task
	}

	return &Task{Task: task.NewComposite(tasks...)}, nil
}

func (r *Runner) enqueue(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var t *Task
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "task", &t); err != nil {
		return nil, err
	}

	r.Emulator.Enqueue(t.Task)

	return starlark.None, nil
}

func (r *Runner) run(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	return starlark.MakeInt(r.Emulator.Run()), nil
}

func (r *Runner) eventLog(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	lines := r.Emulator.Log.Lines()
	items := make([]starlark.Value, len(lines))
	for n, line := range lines {
		items[n] = starlark.String(line)
	}

	return starlark.NewList(items), nil
}

func (r *Runner) state(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	return starlark.String(r.Emulator.String()), nil
}
