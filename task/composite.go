package task

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/minisys/internal"
)

// Composite is an ordered group of tasks executed as one.
type Composite struct {
	identity
	tasks []Task
}

var _ Task = (*Composite)(nil)

// NewComposite creates a composite of tasks, in order.
func NewComposite(tasks ...Task) *Composite {
	return &Composite{
		identity: newIdentity(),
		tasks:    slices.Clone(tasks),
	}
}

// Add appends a task.
func (c *Composite) Add(task Task) {
	c.tasks = append(c.tasks, task)
}

// Remove drops the first occurrence of task. It reports whether the task
// was found.
func (c *Composite) Remove(task Task) bool {
	n := slices.Index(c.tasks, task)
	if n < 0 {
		return false
	}
	c.tasks = slices.Delete(c.tasks, n, n+1)
	return true
}

// Tasks returns the direct children.
func (c *Composite) Tasks() []Task {
	return slices.Clone(c.tasks)
}

// Leaves iterates over every non-composite task, depth first.
func (c *Composite) Leaves() iter.Seq[Task] {
	return internal.SeqFlatMap(c.tasks, Leaves)
}

// Leaves iterates over the non-composite tasks of task. A plain task is its
// own only leaf.
func Leaves(task Task) iter.Seq[Task] {
	if c, ok := task.(*Composite); ok {
		return c.Leaves()
	}
	return func(yield func(Task) bool) {
		yield(task)
	}
}

// Execute runs every child in insertion order. A failing child does not
// stop the ones after it.
func (c *Composite) Execute() {
	for _, task := range c.tasks {
		task.Execute()
	}
}

// Name is "(<child> <child> ...) CompositeTask".
func (c *Composite) Name() string {
	names := make([]string, len(c.tasks))
	for n, task := range c.tasks {
		names[n] = task.Name()
	}
	return "(" + strings.Join(names, " ") + ") CompositeTask"
}
