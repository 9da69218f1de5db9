package node

import (
	"fmt"

	"github.com/speedata/wiredlist/backend/bag"
)

func (l *List[V]) checkOther(other *List[V]) error {
	if other == nil {
		return fmt.Errorf("%w: nil list", bag.ErrInvalidArgument)
	}
	if other == l {
		return bag.ErrSelfEmbed
	}
	return nil
}

// Swap exchanges the positions of the segments [from1, to1) and [from2, to2).
// Both segments must be non-empty and must not overlap; they may be given in
// either order. Only the nodes at the segment boundaries are touched.
func (l *List[V]) Swap(from1, to1, from2, to2 int) error {
	len1, err := bag.CheckFromTo(from1, to1, l.size)
	if err != nil {
		return err
	}
	len2, err := bag.CheckFromTo(from2, to2, l.size)
	if err != nil {
		return err
	}
	if len1 == 0 || len2 == 0 {
		return fmt.Errorf("%w: zero-length segment", bag.ErrInvalidSegment)
	}
	if from2 < from1 {
		from1, to1, from2, to2 = from2, to2, from1, to1
	}
	if to1 > from2 {
		return fmt.Errorf("%w: [%d, %d) overlaps [%d, %d)", bag.ErrInvalidSegment, from1, to1, from2, to2)
	}
	a1, a2 := l.segment(from1, to1)
	b1 := l.nodeAfter(a2, to1-1, from2)
	b2 := l.nodeAfter(b1, from2, to2-1)
	before, after := a1.prev, b2.next
	if a2.next == b1 {
		join(b2, a1)
	} else {
		m1, m2 := a2.next, b1.prev
		join(b2, m1)
		join(m2, a1)
	}
	if before == nil {
		l.makeHead(b1)
	} else {
		join(before, b1)
	}
	if after == nil {
		l.makeTail(a2)
	} else {
		join(a2, after)
	}
	l.gen++
	l.trace(TraceSegment, "swap", "first", from1, "second", from2)
	return nil
}

// Move relocates the segment [from, to) so that it starts at newFrom in the
// resulting list. newFrom must be in [0, Len()-(to-from)].
func (l *List[V]) Move(from, to, newFrom int) error {
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return err
	}
	if newFrom < 0 || newFrom > l.size-length {
		return fmt.Errorf("%w: target index %d, segment length %d, size %d", bag.ErrIndexOutOfRange, newFrom, length, l.size)
	}
	if length == 0 || newFrom == from {
		return nil
	}
	first, last := l.segment(from, to)
	if newFrom > from {
		l.moveToTail(first, last, to-1, newFrom+length-1)
	} else {
		l.moveToHead(first, last, from, newFrom)
	}
	l.gen++
	l.trace(TraceSegment, "move", "from", from, "to", to, "newFrom", newFrom)
	return nil
}

// moveToTail moves the run first..last (last at lastIndex) right after the
// node currently at targetIndex > lastIndex.
func (l *List[V]) moveToTail(first, last *Node[V], lastIndex, targetIndex int) {
	target := l.nodeAfter(last, lastIndex, targetIndex)
	before, after := first.prev, last.next
	if before == nil {
		l.makeHead(after)
	} else {
		join(before, after)
	}
	next := target.next
	join(target, first)
	if next == nil {
		l.makeTail(last)
	} else {
		join(last, next)
	}
}

// moveToHead moves the run first..last (first at firstIndex) right before the
// node currently at targetIndex < firstIndex.
func (l *List[V]) moveToHead(first, last *Node[V], firstIndex, targetIndex int) {
	target := l.nodeBefore(first, firstIndex, targetIndex)
	before, after := first.prev, last.next
	if after == nil {
		l.makeTail(before)
	} else {
		join(before, after)
	}
	prev := target.prev
	if prev == nil {
		l.makeHead(first)
	} else {
		join(prev, first)
	}
	join(last, target)
}

// Exchange swaps the segment [myFrom, myTo) of l with the segment
// [itsFrom, itsTo) of other. If one of the segments is empty, the other one
// is simply transplanted.
func (l *List[V]) Exchange(myFrom, myTo int, other *List[V], itsFrom, itsTo int) error {
	if err := l.checkOther(other); err != nil {
		return err
	}
	len0, err := bag.CheckFromTo(myFrom, myTo, l.size)
	if err != nil {
		return err
	}
	len1, err := bag.CheckFromTo(itsFrom, itsTo, other.size)
	if err != nil {
		return err
	}
	if len0 == 0 {
		if len1 != 0 {
			l.insertChain(myFrom, other.unlinkRange(itsFrom, itsTo))
		}
		return nil
	}
	if len1 == 0 {
		other.insertChain(itsFrom, l.unlinkRange(myFrom, myTo))
		return nil
	}
	seg0L, seg0R := l.segment(myFrom, myTo)
	seg1L, seg1R := other.segment(itsFrom, itsTo)
	att0L, att0R := seg0L.prev, seg0R.next
	att1L, att1R := seg1L.prev, seg1R.next

	if att0L == nil {
		l.makeHead(seg1L)
	} else {
		join(att0L, seg1L)
	}
	if att0R == nil {
		l.makeTail(seg1R)
	} else {
		join(seg1R, att0R)
	}
	if att1L == nil {
		other.makeHead(seg0L)
	} else {
		join(att1L, seg0L)
	}
	if att1R == nil {
		other.makeTail(seg0R)
	} else {
		join(seg0R, att1R)
	}
	l.size += len1 - len0
	other.size += len0 - len1
	l.gen++
	other.gen++
	l.trace(TraceSegment, "exchange", "from", myFrom, "to", myTo, "other", other.ID())
	return nil
}

// Embed moves all elements of other into l so that the first one ends up at
// index. other is empty afterwards.
func (l *List[V]) Embed(index int, other *List[V]) error {
	if err := l.checkOther(other); err != nil {
		return err
	}
	if err := bag.CheckInclusive(index, l.size); err != nil {
		return err
	}
	if other.size != 0 {
		l.insertChain(index, Chain[V]{head: other.head, tail: other.tail, length: other.size})
		other.reset()
	}
	return nil
}

// Transfer moves the segment [itsFrom, itsTo) of other into l so that its
// first element ends up at index.
func (l *List[V]) Transfer(index int, other *List[V], itsFrom, itsTo int) error {
	if err := l.checkOther(other); err != nil {
		return err
	}
	if err := bag.CheckInclusive(index, l.size); err != nil {
		return err
	}
	length, err := bag.CheckFromTo(itsFrom, itsTo, other.size)
	if err != nil {
		return err
	}
	if length > 0 {
		l.insertChain(index, other.unlinkRange(itsFrom, itsTo))
	}
	return nil
}

// Attach moves all elements of other to the end of l.
func (l *List[V]) Attach(other *List[V]) error {
	if err := l.checkOther(other); err != nil {
		return err
	}
	if other.size != 0 {
		l.attach(other)
	}
	return nil
}

// Paste moves all elements of l into the list into, so that the first one
// ends up at index. l is empty afterwards.
func (l *List[V]) Paste(into *List[V], index int) error {
	if into == nil {
		return fmt.Errorf("%w: nil list", bag.ErrInvalidArgument)
	}
	return into.Embed(index, l)
}

// Rewire replaces the segment [from, to) with all elements of other. other
// is empty afterwards.
func (l *List[V]) Rewire(from, to int, other *List[V]) error {
	if err := l.checkOther(other); err != nil {
		return err
	}
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return err
	}
	if length != 0 {
		l.discard(l.unlinkRange(from, to))
	}
	if other.size != 0 {
		l.insertChain(from, Chain[V]{head: other.head, tail: other.tail, length: other.size})
		other.reset()
	}
	return nil
}

// Reverse reverses the order of the values. The nodes stay where they are,
// only the values are exchanged.
func (l *List[V]) Reverse() {
	x, y := l.head, l.tail
	for i := 0; i < l.size/2; i++ {
		x.Value, y.Value = y.Value, x.Value
		x, y = x.next, y.prev
	}
}
