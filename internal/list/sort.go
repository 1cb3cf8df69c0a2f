package list

// Sort sorts the list in ascending order according to cmp, which
// should return a negative number when a < b, a positive number when
// a > b and zero when a == b. The sort is stable and works by
// relinking the existing nodes, so nothing is allocated.
func (ls *Single[T]) Sort(cmp func(a, b T) int) {
	if ls.len < 2 {
		return
	}

	ls.head = mergeSort(ls.head, ls.len, cmp)

	tail := ls.head
	for tail.next != nil {
		tail = tail.next
	}
	ls.tail = tail
}

// mergeSort sorts the chain of exactly n nodes starting at head and
// returns the new head. The left half gets n/2 nodes.
func mergeSort[T any](head *SingleNode[T], n int, cmp func(T, T) int) *SingleNode[T] {
	if n <= 1 {
		return head
	}

	half := n / 2
	ltail := head
	for range half - 1 {
		ltail = ltail.next
	}
	rhead := ltail.next
	ltail.next = nil

	return merge(
		mergeSort(head, half, cmp),
		mergeSort(rhead, n-half, cmp),
		cmp,
	)
}

// merge combines two sorted chains into one. On ties the node from l
// comes first. Whatever remains of either chain once the other runs
// out is spliced on as is.
func merge[T any](l, r *SingleNode[T], cmp func(T, T) int) *SingleNode[T] {
	var head *SingleNode[T]
	next := &head
	for l != nil && r != nil {
		if cmp(l.Val, r.Val) <= 0 {
			*next = l
			l = l.next
		} else {
			*next = r
			r = r.next
		}
		next = &(*next).next
	}

	if l != nil {
		*next = l
	} else {
		*next = r
	}

	return head
}
