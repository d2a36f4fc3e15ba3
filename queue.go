package tlqsched

import "iter"

// Queue is an insertion-ordered sequence of [Process] references. It does not
// own the processes it holds and does not detect duplicates; callers must not
// enqueue the same process twice.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	items []*Process
	head  int
}

// NewQueue creates a new [Queue] holding the given processes in order.
func NewQueue(processes ...*Process) *Queue {
	q := &Queue{}
	for _, p := range processes {
		q.Enqueue(p)
	}
	return q
}

// IsEmpty returns true if the queue holds no processes.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of processes in the queue.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Enqueue appends the process at the tail of the queue.
func (q *Queue) Enqueue(p *Process) {
	q.items = append(q.items, p)
}

// Dequeue removes and returns the process at the head of the queue. If the
// queue is empty, Dequeue returns nil.
func (q *Queue) Dequeue() *Process {
	if q.IsEmpty() {
		return nil
	}

	p := q.items[q.head]
	q.items[q.head] = nil // avoid memory leak
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p
}

// Peek returns the process at the head of the queue without removing it. If
// the queue is empty, Peek returns nil.
func (q *Queue) Peek() *Process {
	if q.IsEmpty() {
		return nil
	}
	return q.items[q.head]
}

// All returns an iterator over the queued processes from head to tail.
func (q *Queue) All() iter.Seq[*Process] {
	return func(yield func(*Process) bool) {
		for _, p := range q.items[q.head:] {
			if !yield(p) {
				return
			}
		}
	}
}

// insert places p at position i counted from the head.
func (q *Queue) insert(i int, p *Process) {
	i += q.head
	q.items = append(q.items, nil)
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = p
}

// Transfer moves the head of from to the tail of to and returns it. If from is
// empty, nothing is moved and Transfer returns nil.
func Transfer(from, to *Queue) *Process {
	p := from.Dequeue()
	if p != nil {
		to.Enqueue(p)
	}
	return p
}
