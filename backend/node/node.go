package node

import "fmt"

// Node is an element of a List. The zero value is a detached node holding the
// zero value of V.
type Node[V any] struct {
	// Value is the value stored with this element.
	Value V
	// prev is a plain back reference, next owns the rest of the run.
	prev, next *Node[V]
}

// Next returns the next list element or nil.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous list element or nil.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

func (n *Node[V]) String() string {
	return fmt.Sprint(n.Value)
}

// newNodeAfter creates a node holding val and links it after prev.
func newNodeAfter[V any](prev *Node[V], val V) *Node[V] {
	n := &Node[V]{Value: val, prev: prev}
	prev.next = n
	return n
}

// join links a and b so that b follows a.
func join[V any](a, b *Node[V]) {
	a.next = b
	b.prev = a
}

// Chain is a detached run of nodes. It is created right before a splice and
// consumed by it, or returned from a detach and wrapped in a new List.
type Chain[V any] struct {
	head, tail *Node[V]
	length     int
}

// Len returns the number of nodes in the chain.
func (c Chain[V]) Len() int {
	return c.length
}

func (c Chain[V]) empty() bool {
	return c.length == 0
}

// chainOf builds a chain from the values. It returns an empty chain for an
// empty slice.
func chainOf[V any](values []V) Chain[V] {
	if len(values) == 0 {
		return Chain[V]{}
	}
	head := &Node[V]{Value: values[0]}
	tail := head
	for _, v := range values[1:] {
		tail = newNodeAfter(tail, v)
	}
	return Chain[V]{head: head, tail: tail, length: len(values)}
}

// copyChain copies length values starting at n into a new chain.
func copyChain[V any](n *Node[V], length int) Chain[V] {
	if length == 0 {
		return Chain[V]{}
	}
	head := &Node[V]{Value: n.Value}
	tail := head
	for i := 1; i < length; i++ {
		n = n.next
		tail = newNodeAfter(tail, n.Value)
	}
	return Chain[V]{head: head, tail: tail, length: length}
}

// scrub zeroes the value and the links of n.
func scrub[V any](n *Node[V]) {
	var zero V
	n.Value = zero
	n.prev, n.next = nil, nil
}

// scrubChain scrubs every node of c.
func scrubChain[V any](c Chain[V]) {
	n := c.head
	for i := 0; i < c.length; i++ {
		next := n.next
		scrub(n)
		n = next
	}
}
