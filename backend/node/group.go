package node

import (
	"fmt"

	"github.com/speedata/wiredlist/backend/bag"
)

func checkPredicates[V any](preds []Predicate[V]) error {
	if len(preds) == 0 {
		return fmt.Errorf("%w: no predicates", bag.ErrInvalidArgument)
	}
	for i, p := range preds {
		if p == nil {
			return fmt.Errorf("%w: predicate %d is nil", bag.ErrInvalidArgument, i)
		}
	}
	return nil
}

// createGroups visits every node once and moves it to the group of the first
// predicate it satisfies. Nodes that match no predicate stay in l.
func (l *List[V]) createGroups(preds []Predicate[V]) []*List[V] {
	groups := make([]*List[V], len(preds))
	for i := range groups {
		groups[i] = l.derive()
	}
	for n := l.head; n != nil; {
		next := n.next
		for i, p := range preds {
			if p(n.Value) {
				l.unlinkNode(n)
				groups[i].appendNode(n)
				break
			}
		}
		n = next
	}
	l.trace(TraceSegment, "group", "groups", len(groups))
	return groups
}

// Group moves the elements into one new list per predicate. An element goes
// into the group of the first predicate it satisfies. The returned slice holds
// the groups in predicate order followed by l itself, which keeps the
// elements that did not match any predicate. Every group keeps the relative
// order of its elements.
func (l *List[V]) Group(preds ...Predicate[V]) ([]*List[V], error) {
	if err := checkPredicates(preds); err != nil {
		return nil, err
	}
	return append(l.createGroups(preds), l), nil
}

// Defragment reorders the list so that the elements satisfying the first
// predicate come first, followed by the elements satisfying the second
// predicate and so on. The elements that satisfy no predicate come last if
// keepRemainder is true and are removed otherwise.
func (l *List[V]) Defragment(keepRemainder bool, preds ...Predicate[V]) error {
	if err := checkPredicates(preds); err != nil {
		return err
	}
	groups := l.createGroups(preds)
	rest := Chain[V]{head: l.head, tail: l.tail, length: l.size}
	l.reset()
	for _, g := range groups {
		if g.size != 0 {
			l.attach(g)
		}
	}
	if rest.length != 0 {
		if keepRemainder {
			l.insertChain(l.size, rest)
		} else {
			l.discard(rest)
		}
	}
	return nil
}

// Partition splits the list into chunks of size elements. The last chunk,
// which may be shorter, is l itself.
func (l *List[V]) Partition(size int) ([]*List[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: partition size %d", bag.ErrInvalidArgument, size)
	}
	parts := make([]*List[V], 0, l.size/size+1)
	for l.size > size {
		c := Chain[V]{head: l.head, tail: l.nodeAt(size - 1), length: size}
		parts = append(parts, l.fromChain(l.unlinkChain(c)))
	}
	return append(parts, l), nil
}

// Split splits the list into at most n chunks of (nearly) equal size. The
// last chunk is l itself.
func (l *List[V]) Split(n int) ([]*List[V], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of partitions %d", bag.ErrInvalidArgument, n)
	}
	if l.size == 0 {
		return []*List[V]{l}, nil
	}
	return l.Partition((l.size-1)/n + 1)
}

// LChop removes the longest prefix whose elements satisfy pred and returns it.
// If every element satisfies pred, l itself is returned. If the first element
// does not satisfy pred, an empty list is returned and l stays as it is.
func (l *List[V]) LChop(pred Predicate[V]) (*List[V], error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: nil predicate", bag.ErrInvalidArgument)
	}
	if l.size == 0 {
		return l, nil
	}
	var last *Node[V]
	length := 0
	for n := l.head; n != nil && pred(n.Value); n = n.next {
		last = n
		length++
	}
	switch length {
	case l.size:
		return l, nil
	case 0:
		return l.derive(), nil
	}
	return l.fromChain(l.unlinkChain(Chain[V]{head: l.head, tail: last, length: length})), nil
}

// RChop removes the longest suffix whose elements satisfy pred and returns it.
// If every element satisfies pred, l itself is returned. If the last element
// does not satisfy pred, an empty list is returned and l stays as it is.
func (l *List[V]) RChop(pred Predicate[V]) (*List[V], error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: nil predicate", bag.ErrInvalidArgument)
	}
	if l.size == 0 {
		return l, nil
	}
	var first *Node[V]
	length := 0
	for n := l.tail; n != nil && pred(n.Value); n = n.prev {
		first = n
		length++
	}
	switch length {
	case l.size:
		return l, nil
	case 0:
		return l.derive(), nil
	}
	return l.fromChain(l.unlinkChain(Chain[V]{head: first, tail: l.tail, length: length})), nil
}
