//go:build go1.23

package strq

import "iter"

// All returns an iterator over the elements of the queue from head to
// tail. The queue must not be modified during iteration.
func (q *Queue) All() iter.Seq[string] {
	if q == nil {
		return func(func(string) bool) {}
	}
	return q.ls.All()
}
