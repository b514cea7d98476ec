package aoc

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	q []T
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Items returns the queued values, front first. The slice aliases the
// queue and is only valid until the next Push.
func (q *Queue[T]) Items() []T {
	return q.q
}

// Clear empties the queue, keeping its storage for reuse.
func (q *Queue[T]) Clear() {
	q.q = q.q[:0]
}
