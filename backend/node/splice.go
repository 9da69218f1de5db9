package node

// insertChain links the chain into l so that its head ends up at index. The
// index must be in [0, l.size].
func (l *List[V]) insertChain(index int, c Chain[V]) {
	switch {
	case l.size == 0:
		l.makeHead(c.head)
		l.makeTail(c.tail)
	case index == 0:
		join(c.tail, l.head)
		l.makeHead(c.head)
	case index == l.size:
		join(l.tail, c.head)
		l.makeTail(c.tail)
	default:
		n := l.nodeAt(index)
		join(n.prev, c.head)
		join(c.tail, n)
	}
	l.size += c.length
	l.gen++
	l.trace(TraceSplice, "insert", "index", index, "length", c.length)
}

// insertNode links the detached node n into l at index.
func (l *List[V]) insertNode(index int, n *Node[V]) {
	l.insertChain(index, Chain[V]{head: n, tail: n, length: 1})
}

// appendNode links the detached node n after the tail of l.
func (l *List[V]) appendNode(n *Node[V]) {
	if l.size == 0 {
		l.makeHead(n)
	} else {
		join(l.tail, n)
	}
	l.makeTail(n)
	l.size++
	l.gen++
}

// unlinkNode detaches n from l. Only the neighbours of n are touched.
func (l *List[V]) unlinkNode(n *Node[V]) {
	switch {
	case n == l.head && n == l.tail:
		l.head, l.tail = nil, nil
	case n == l.head:
		l.makeHead(n.next)
	case n == l.tail:
		l.makeTail(n.prev)
	default:
		join(n.prev, n.next)
	}
	n.prev, n.next = nil, nil
	l.size--
	l.gen++
}

// unlinkChain detaches the run described by c from l and returns it as a
// self contained chain. A chain spanning the whole list empties it.
func (l *List[V]) unlinkChain(c Chain[V]) Chain[V] {
	prev, next := c.head.prev, c.tail.next
	switch {
	case prev == nil && next == nil:
		l.head, l.tail = nil, nil
	case prev == nil:
		l.makeHead(next)
	case next == nil:
		l.makeTail(prev)
	default:
		join(prev, next)
	}
	c.head.prev, c.tail.next = nil, nil
	l.size -= c.length
	l.gen++
	l.trace(TraceSplice, "unlink", "length", c.length)
	return c
}

// unlinkRange detaches the non-empty segment [from, to).
func (l *List[V]) unlinkRange(from, to int) Chain[V] {
	first, last := l.segment(from, to)
	return l.unlinkChain(Chain[V]{head: first, tail: last, length: to - from})
}

// destroy removes n from l for good and returns its value.
func (l *List[V]) destroy(n *Node[V]) V {
	val := n.Value
	l.unlinkNode(n)
	if l.strategy == Scrub {
		scrub(n)
	}
	return val
}

// discard disposes of a chain that has been unlinked from l for good.
func (l *List[V]) discard(c Chain[V]) {
	if l.strategy == Scrub {
		scrubChain(c)
	}
}

// attach appends all nodes of other (which must not be l and must not be
// empty) and leaves other empty.
func (l *List[V]) attach(other *List[V]) {
	if l.size == 0 {
		l.head = other.head
	} else {
		join(l.tail, other.head)
	}
	l.tail = other.tail
	l.size += other.size
	l.gen++
	other.reset()
}
