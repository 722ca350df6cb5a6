package task

// Queue is a FIFO container of tasks.
// The zero value is an empty queue.
//
// A scheduler instance is driven by a single logical thread of control, so
// the queue needs no locking: the running fiber and the scheduler loop never
// touch it at the same time.
type Queue struct {
	head, tail *Task
}

// Push a task onto the back of the queue.
func (q *Queue) Push(t *Task) {
	if asserts && t.Next != nil {
		panic("task: pushing a task to a queue with a non-nil Next pointer")
	}
	if q.tail != nil {
		q.tail.Next = t
	}
	q.tail = t
	t.Next = nil
	if q.head == nil {
		q.head = t
	}
}

// Pop a task off of the front of the queue, or nil if the queue is empty.
func (q *Queue) Pop() *Task {
	t := q.head
	if t == nil {
		return nil
	}
	q.head = t.Next
	if q.tail == t {
		q.tail = nil
	}
	t.Next = nil
	return t
}

// Empty checks if the queue is empty.
func (q *Queue) Empty() bool {
	return q.head == nil
}
