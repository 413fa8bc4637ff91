package menu

// link stores the neighbours of a ring node as arena indices.
type link struct {
	next int
	prev int
}

// arena backs one or more disjoint circular doubly-linked rings. Nodes are
// addressed by their index and never removed.
type arena []link

// push adds a node to the tail of the ring starting at head and returns the
// new node's index together with the (possibly new) ring head. A head of -1
// denotes an empty ring.
func (a *arena) push(head int) (int, int) {
	idx := len(*a)
	if head < 0 {
		*a = append(*a, link{next: idx, prev: idx})
		return idx, idx
	}
	nodes := *a
	tail := nodes[head].prev
	*a = append(nodes, link{next: head, prev: tail})
	(*a)[tail].next = idx
	(*a)[head].prev = idx
	return idx, head
}

func (a arena) valid(idx int) bool {
	return idx >= 0 && idx < len(a)
}

func (a arena) next(idx int) int {
	if !a.valid(idx) {
		return -1
	}
	return a[idx].next
}

func (a arena) prev(idx int) int {
	if !a.valid(idx) {
		return -1
	}
	return a[idx].prev
}

// walk returns the indices of the ring starting at head in forward order.
func (a arena) walk(head int) []int {
	if !a.valid(head) {
		return nil
	}
	out := []int{head}
	for idx := a[head].next; idx != head; idx = a[idx].next {
		out = append(out, idx)
	}
	return out
}
