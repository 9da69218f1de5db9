package node

// makeHead turns n into the first node of l.
func (l *List[V]) makeHead(n *Node[V]) {
	n.prev = nil
	l.head = n
}

// makeTail turns n into the last node of l.
func (l *List[V]) makeTail(n *Node[V]) {
	n.next = nil
	l.tail = n
}

// nodeAt returns the node at index, walking from the closer end. The index
// must be valid.
func (l *List[V]) nodeAt(index int) *Node[V] {
	if index < l.size>>1 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// nodeAfter returns the node at target, starting from anchor which sits at
// anchorIndex <= target. It walks forward from the anchor or backward from the
// tail, whichever is shorter.
func (l *List[V]) nodeAfter(anchor *Node[V], anchorIndex, target int) *Node[V] {
	if target-anchorIndex <= l.size-1-target {
		n := anchor
		for i := anchorIndex; i < target; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > target; i-- {
		n = n.prev
	}
	return n
}

// nodeBefore returns the node at target, starting from anchor which sits at
// anchorIndex >= target. It walks backward from the anchor or forward from
// the head, whichever is shorter.
func (l *List[V]) nodeBefore(anchor *Node[V], anchorIndex, target int) *Node[V] {
	if anchorIndex-target <= target {
		n := anchor
		for i := anchorIndex; i > target; i-- {
			n = n.prev
		}
		return n
	}
	n := l.head
	for i := 0; i < target; i++ {
		n = n.next
	}
	return n
}

// segment returns the first and the last node of the non-empty segment
// [from, to).
func (l *List[V]) segment(from, to int) (*Node[V], *Node[V]) {
	first := l.nodeAt(from)
	return first, l.nodeAfter(first, from, to-1)
}
