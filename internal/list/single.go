package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the head and tail. It keeps
// track of its own length so that it never needs to walk the chain
// to find it.
//
// A zero value Single is an empty list ready to use.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// Push adds a new node containing v to the head of the list.
func (ls *Single[T]) Push(v T) {
	ls.head = &SingleNode[T]{Val: v, next: ls.head}
	if ls.tail == nil {
		ls.tail = ls.head
	}
	ls.len++
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.len++
}

// Peek returns the value of the head node. It returns the zero value
// and false if the list is empty.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Pop removes the current head node from the list and returns its
// value. It returns false if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	ls.len--
	if ls.head == nil {
		ls.tail = nil
	}

	v = n.Val
	n.release()
	return v, true
}

// Clear detaches every node from the list, zeroing each one on the
// way, and leaves the list empty.
func (ls *Single[T]) Clear() {
	cur := ls.head
	for cur != nil {
		next := cur.next
		cur.release()
		cur = next
	}

	*ls = Single[T]{}
}

// Reverse reverses the order of the list in place by flipping the
// links between the existing nodes.
func (ls *Single[T]) Reverse() {
	if ls.head == nil {
		return
	}

	var prev *SingleNode[T]
	cur := ls.head
	ls.tail = ls.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	ls.head = prev
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// Nodes returns an iterator over the nodes of the list. The list must
// not be modified during iteration.
func (ls *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

func (n *SingleNode[T]) insert() *SingleNode[T] {
	if n == nil {
		return new(SingleNode[T])
	}

	n.next = &SingleNode[T]{next: n.next}
	return n.next
}

// release drops the node's value and link so that a detached node
// holds on to nothing.
func (n *SingleNode[T]) release() {
	var zero T
	n.Val = zero
	n.next = nil
}
