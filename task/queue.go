package task

import (
	"sync"
)

// Queue is a FIFO of tasks. It is safe for concurrent use.
type Queue struct {
	mutex sync.Mutex
	tasks []Task
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends task to the tail.
func (q *Queue) Enqueue(task Task) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.tasks = append(q.tasks, task)
}

// Dequeue removes the head of the queue. It never blocks; ok is false when
// the queue is empty.
func (q *Queue) Dequeue() (task Task, ok bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.tasks) == 0 {
		return
	}

	task = q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	ok = true

	return
}

// Len is the number of queued tasks.
func (q *Queue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.tasks)
}
