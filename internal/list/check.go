package list

import "github.com/pkg/errors"

// ErrCorrupt is the cause of every error returned by [Single.Check].
var ErrCorrupt = errors.New("corrupt list")

// Check verifies the structural invariants of the list: the length
// matches the number of reachable nodes, head and tail are both nil
// exactly when the list is empty, the tail is the last reachable node
// and the chain contains no cycles. It returns nil if all of them
// hold.
func (ls *Single[T]) Check() error {
	if ls.len < 0 {
		return errors.Wrapf(ErrCorrupt, "negative length %v", ls.len)
	}

	if ls.len == 0 {
		if ls.head != nil || ls.tail != nil {
			return errors.Wrap(ErrCorrupt, "empty list has dangling head or tail")
		}
		return nil
	}

	if ls.head == nil || ls.tail == nil {
		return errors.Wrapf(ErrCorrupt, "list of length %v is missing head or tail", ls.len)
	}
	if ls.tail.next != nil {
		return errors.Wrap(ErrCorrupt, "tail is not the terminal node")
	}

	// Walking at most len nodes bounds the loop even if the chain
	// loops back on itself.
	last := ls.head
	for i := 1; i < ls.len; i++ {
		if last.next == nil {
			return errors.Wrapf(ErrCorrupt, "chain ends after %v nodes but length is %v", i, ls.len)
		}
		last = last.next
	}
	if last != ls.tail {
		return errors.Wrapf(ErrCorrupt, "node %v is not the tail", ls.len)
	}

	return nil
}
