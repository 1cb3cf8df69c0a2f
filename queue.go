package strq

import (
	"log/slog"
	"strings"

	"deedles.dev/strq/internal/list"
	"github.com/pkg/errors"
)

// A Queue holds strings in FIFO order, with the additional ability to
// insert at the head. A zero value Queue is empty and ready to use.
//
// Every method may be called on a nil *Queue. A nil Queue behaves as
// an absent queue: insertions and removals report failure, Size
// returns 0 and everything else does nothing.
//
// A Queue must not be copied after first use.
type Queue struct {
	_ noCopy

	ls list.Single[string]
}

// New returns a new, empty Queue.
//
// Unlike an allocator that can return nothing, Go's runtime aborts
// the program when memory is exhausted, so New never fails.
func New() *Queue {
	return new(Queue)
}

// Free removes every element from the queue, releasing each node in
// turn. The queue is empty and usable again afterwards.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	q.ls.Clear()
}

// InsertHead inserts v at the head of the queue. It returns false if
// q is nil.
func (q *Queue) InsertHead(v string) bool {
	if q == nil {
		return false
	}

	q.ls.Push(v)
	return true
}

// InsertTail inserts v at the tail of the queue. It returns false if
// q is nil.
func (q *Queue) InsertTail(v string) bool {
	if q == nil {
		return false
	}

	q.ls.Enqueue(v)
	return true
}

// RemoveHead removes the element at the head of the queue. It returns
// false, leaving the queue untouched, if q is nil or empty.
//
// If dst is not nil, the removed value is copied into it, truncated
// to len(dst)-1 bytes and followed by a 0 byte. Nothing is ever
// written at or past len(dst). A non-nil dst of length 0 cannot hold
// the terminator, so nothing is copied into it, though the element is
// still removed.
func (q *Queue) RemoveHead(dst []byte) bool {
	if q == nil {
		return false
	}

	v, ok := q.ls.Pop()
	if !ok {
		return false
	}

	switch {
	case dst == nil:
	case len(dst) == 0:
		slog.Warn("destination buffer has no room for terminator", "removed", len(v))
	default:
		n := copy(dst[:len(dst)-1], v)
		dst[n] = 0
	}

	return true
}

// Pop removes the element at the head of the queue and returns it. It
// returns false if q is nil or empty.
func (q *Queue) Pop() (string, bool) {
	if q == nil {
		return "", false
	}
	return q.ls.Pop()
}

// Peek returns the element at the head of the queue without removing
// it. It returns false if q is nil or empty.
func (q *Queue) Peek() (string, bool) {
	if q == nil {
		return "", false
	}
	return q.ls.Peek()
}

// Size returns the number of elements in the queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.ls.Len()
}

// Reverse reverses the order of the elements in the queue in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.ls.Reverse()
}

// Sort sorts the queue in ascending byte-wise lexicographic order.
// The sort is stable: equal elements keep their relative order.
func (q *Queue) Sort() {
	if q == nil {
		return
	}
	q.ls.Sort(strings.Compare)
}

// Check verifies the internal consistency of the queue, returning an
// error describing the first problem found. A nil queue is always
// consistent.
func (q *Queue) Check() error {
	if q == nil {
		return nil
	}
	return errors.Wrap(q.ls.Check(), "check queue")
}
