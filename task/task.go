package task

import (
	"github.com/rs/xid"
)

// Task is a command that can be scheduled on the queue.
type Task interface {
	// Execute performs the task. Failures are stored on the task.
	Execute()
	// Name is a human readable label of what the task does.
	Name() string
	// ID uniquely identifies the task instance.
	ID() string
}

type identity struct {
	id string
}

func newIdentity() identity {
	return identity{id: xid.New().String()}
}

func (i identity) ID() string {
	return i.id
}
