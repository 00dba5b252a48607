package cpu

import (
	"log/slog"
	"slices"

	"github.com/ezrec/minisys/internal/logging"
	"github.com/ezrec/minisys/task"
)

// Observer receives thread notifications.
type Observer interface {
	Update(message string)
}

// Source supplies tasks to threads. Dequeue must not block.
type Source interface {
	Dequeue() (task.Task, bool)
}

// Thread is an execution unit.
type Thread struct {
	Logger *slog.Logger

	name      string
	source    Source
	observers []Observer
	task      task.Task
	state     State
}

// NewThread creates an idle thread fetching from source.
func NewThread(name string, source Source, logger *slog.Logger) *Thread {
	return &Thread{
		Logger: logging.OrDiscard(logger),
		name:   name,
		source: source,
	}
}

// Name of the thread.
func (th *Thread) Name() string {
	return th.name
}

// State of the thread. Outside of Run it is always STATE_IDLE.
func (th *Thread) State() State {
	return th.state
}

// Attach registers an observer. Observers are notified in attach order.
func (th *Thread) Attach(observer Observer) {
	th.observers = append(th.observers, observer)
}

// Detach removes the first registration of observer, and reports whether
// there was one.
func (th *Thread) Detach(observer Observer) bool {
	n := slices.Index(th.observers, observer)
	if n < 0 {
		return false
	}
	th.observers = slices.Delete(th.observers, n, n+1)
	return true
}

// Notify sends message to all observers.
func (th *Thread) Notify(message string) {
	for _, observer := range th.observers {
		observer.Update(message)
	}
}

// Run performs one cycle: fetch, execute and notify. It reports whether a
// task was run; an empty source ends the cycle without any notification.
func (th *Thread) Run() (ran bool) {
	th.state = STATE_FETCHING
	th.fetchTask()
	if th.task == nil {
		th.state = STATE_IDLE
		return
	}

	th.state = STATE_EXECUTING
	th.Logger.Debug("thread: execute", "thread", th.name, "task", th.task.Name(), "id", th.task.ID(), "leaves", leafIDs(th.task))
	th.task.Execute()

	th.state = STATE_NOTIFYING
	th.Notify(f("%v has finished the task: %v", th.name, th.task.Name()))

	th.discardTask()
	th.state = STATE_IDLE
	ran = true

	return
}

func (th *Thread) fetchTask() {
	th.task = nil
	if th.source == nil {
		return
	}
	if next, ok := th.source.Dequeue(); ok {
		th.task = next
	}
}

func (th *Thread) discardTask() {
	th.task = nil
}

// leafIDs lists the ids of the plain tasks under t.
func leafIDs(t task.Task) (ids []string) {
	for leaf := range task.Leaves(t) {
		ids = append(ids, leaf.ID())
	}
	return
}
