package node

import (
	"fmt"
	"iter"

	"github.com/speedata/wiredlist/backend/bag"
)

// Predicate decides whether a value belongs to a group, a chopped run or a
// set of values to be removed.
type Predicate[V any] func(V) bool

// Set replaces the value at index and returns the old value.
func (l *List[V]) Set(index int, v V) (V, error) {
	if err := bag.CheckIndex(index, l.size); err != nil {
		var zero V
		return zero, err
	}
	n := l.nodeAt(index)
	old := n.Value
	n.Value = v
	return old, nil
}

// SetAll overwrites consecutive values starting at index.
func (l *List[V]) SetAll(index int, values ...V) error {
	if _, err := bag.CheckFromTo(index, index+len(values), l.size); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	n := l.nodeAt(index)
	for _, v := range values {
		n.Value = v
		n = n.next
	}
	return nil
}

// SetIf replaces the value at index with v if the current value satisfies
// cond. It returns the value found at index.
func (l *List[V]) SetIf(index int, cond Predicate[V], v V) (V, error) {
	var zero V
	if cond == nil {
		return zero, fmt.Errorf("%w: nil predicate", bag.ErrInvalidArgument)
	}
	if err := bag.CheckIndex(index, l.size); err != nil {
		return zero, err
	}
	n := l.nodeAt(index)
	old := n.Value
	if cond(old) {
		n.Value = v
	}
	return old, nil
}

// Append inserts v at the end of the list.
func (l *List[V]) Append(v V) {
	l.appendNode(&Node[V]{Value: v})
}

// Prepend inserts v at the start of the list.
func (l *List[V]) Prepend(v V) {
	n := &Node[V]{Value: v}
	if l.size == 0 {
		l.makeTail(n)
	} else {
		join(n, l.head)
	}
	l.makeHead(n)
	l.size++
	l.gen++
}

// AppendAll inserts the values at the end of the list.
func (l *List[V]) AppendAll(values ...V) {
	if len(values) != 0 {
		l.insertChain(l.size, chainOf(values))
	}
}

// AppendSeq inserts the values produced by seq at the end of the list.
func (l *List[V]) AppendSeq(seq iter.Seq[V]) {
	for v := range seq {
		l.Append(v)
	}
}

// PrependAll inserts the values at the start of the list, keeping their
// order.
func (l *List[V]) PrependAll(values ...V) {
	if len(values) != 0 {
		l.insertChain(0, chainOf(values))
	}
}

// Insert inserts v so that it ends up at index.
func (l *List[V]) Insert(index int, v V) error {
	if err := bag.CheckInclusive(index, l.size); err != nil {
		return err
	}
	l.insertNode(index, &Node[V]{Value: v})
	return nil
}

// InsertAll inserts the values so that the first one ends up at index.
func (l *List[V]) InsertAll(index int, values ...V) error {
	if err := bag.CheckInclusive(index, l.size); err != nil {
		return err
	}
	if len(values) != 0 {
		l.insertChain(index, chainOf(values))
	}
	return nil
}

// Remove removes the element at index and returns its value.
func (l *List[V]) Remove(index int) (V, error) {
	if err := bag.CheckIndex(index, l.size); err != nil {
		var zero V
		return zero, err
	}
	return l.destroy(l.nodeAt(index)), nil
}

// RemoveValue removes the first occurrence of v. It returns false if v was not
// found.
func (l *List[V]) RemoveValue(v V) bool {
	for n := l.head; n != nil; n = n.next {
		if l.eq(v, n.Value) {
			l.destroy(n)
			return true
		}
	}
	return false
}

// RemoveIf removes all elements satisfying pred and returns how many were
// removed.
func (l *List[V]) RemoveIf(pred Predicate[V]) int {
	if pred == nil {
		return 0
	}
	size := l.size
	for n := l.head; n != nil; {
		next := n.next
		if pred(n.Value) {
			l.destroy(n)
		}
		n = next
	}
	return size - l.size
}

// RemoveAll removes every element that is equal to one of the values.
func (l *List[V]) RemoveAll(values ...V) int {
	return l.RemoveIf(func(v V) bool {
		for _, x := range values {
			if l.eq(x, v) {
				return true
			}
		}
		return false
	})
}

// RetainAll removes every element that is not equal to one of the values.
func (l *List[V]) RetainAll(values ...V) int {
	return l.RemoveIf(func(v V) bool {
		for _, x := range values {
			if l.eq(x, v) {
				return false
			}
		}
		return true
	})
}

// DeleteFirst removes the first element.
func (l *List[V]) DeleteFirst() error {
	if l.size == 0 {
		return bag.ErrNoSuchElement
	}
	l.destroy(l.head)
	return nil
}

// DeleteLast removes the last element.
func (l *List[V]) DeleteLast() error {
	if l.size == 0 {
		return bag.ErrNoSuchElement
	}
	l.destroy(l.tail)
	return nil
}

// ReplaceAll replaces every value with the result of fn.
func (l *List[V]) ReplaceAll(fn func(V) V) {
	for n := l.head; n != nil; n = n.next {
		n.Value = fn(n.Value)
	}
}

// Replace replaces the segment [from, to) with the values. If the segment has
// as many elements as there are values, the nodes are reused.
func (l *List[V]) Replace(from, to int, values ...V) error {
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return err
	}
	switch {
	case length == 0:
	case length == len(values):
		n := l.nodeAt(from)
		for _, v := range values {
			n.Value = v
			n = n.next
		}
		return nil
	default:
		l.discard(l.unlinkRange(from, to))
	}
	if len(values) != 0 {
		l.insertChain(from, chainOf(values))
	}
	return nil
}

// Shrink reduces the list to the segment [from, to). If from equals to, the
// list is cleared.
func (l *List[V]) Shrink(from, to int) error {
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return err
	}
	if length == 0 {
		l.Clear()
		return nil
	}
	if length == l.size {
		return nil
	}
	first, last := l.segment(from, to)
	if from > 0 {
		prefix := Chain[V]{head: l.head, tail: first.prev, length: from}
		prefix.tail.next = nil
		l.makeHead(first)
		l.discard(prefix)
	}
	if to < l.size {
		suffix := Chain[V]{head: last.next, tail: l.tail, length: l.size - to}
		suffix.head.prev = nil
		l.makeTail(last)
		l.discard(suffix)
	}
	l.size = length
	l.gen++
	return nil
}

// Cut removes the segment [from, to) and returns it as a new list.
func (l *List[V]) Cut(from, to int) (*List[V], error) {
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return l.derive(), nil
	}
	return l.fromChain(l.unlinkRange(from, to)), nil
}

// Clear removes all elements.
func (l *List[V]) Clear() {
	if l.size == 0 {
		return
	}
	l.discard(Chain[V]{head: l.head, tail: l.tail, length: l.size})
	l.reset()
}
