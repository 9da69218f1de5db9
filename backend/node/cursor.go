package node

import (
	"github.com/speedata/wiredlist/backend/bag"
)

// Cursor is a one-way iterator over a List that can change the list while
// walking it. A forward cursor walks from head to tail, a reverse cursor from
// tail to head; Turn converts one into the other.
//
// A new cursor sits before the first element. Next must be called before any
// of the methods that access the current element.
//
// Structural changes to the list that are not made through the cursor
// invalidate it: every method then returns bag.ErrConcurrentModification.
//
// A cursor that removes the last remaining element is back before the first
// element, so its methods report bag.ErrCursorNotStarted. bag.ErrEmptyList
// is not returned in practice.
type Cursor[V any] struct {
	list    *List[V]
	curr    *Node[V]
	reverse bool
	started bool
	gen     uint64
}

// Cursor returns a cursor that walks the list from head to tail, or from
// tail to head if reverse is true.
func (l *List[V]) Cursor(reverse bool) *Cursor[V] {
	return &Cursor[V]{list: l, reverse: reverse, gen: l.gen}
}

// Reverse returns true for a cursor walking from tail to head.
func (c *Cursor[V]) Reverse() bool {
	return c.reverse
}

func (c *Cursor[V]) first() *Node[V] {
	if c.reverse {
		return c.list.tail
	}
	return c.list.head
}

func (c *Cursor[V]) last() *Node[V] {
	if c.reverse {
		return c.list.head
	}
	return c.list.tail
}

func (c *Cursor[V]) ahead(n *Node[V]) *Node[V] {
	if c.reverse {
		return n.prev
	}
	return n.next
}

func (c *Cursor[V]) checkGen() error {
	if c.gen != c.list.gen {
		return bag.ErrConcurrentModification
	}
	return nil
}

// checkCurrent makes sure there is a current element.
func (c *Cursor[V]) checkCurrent() error {
	if err := c.checkGen(); err != nil {
		return err
	}
	if !c.started {
		return bag.ErrCursorNotStarted
	}
	if c.list.size == 0 {
		return bag.ErrEmptyList
	}
	return nil
}

// upcoming returns the node Next would move to.
func (c *Cursor[V]) upcoming() (*Node[V], error) {
	if err := c.checkGen(); err != nil {
		return nil, err
	}
	if c.list.size == 0 {
		return nil, bag.ErrNoSuchElement
	}
	if !c.started {
		return c.first(), nil
	}
	if c.curr == c.last() {
		return nil, bag.ErrNoSuchElement
	}
	n := c.ahead(c.curr)
	if n == nil {
		return nil, bag.ErrConcurrentModification
	}
	return n, nil
}

// HasNext returns true if a call to Next would succeed.
func (c *Cursor[V]) HasNext() bool {
	if c.gen != c.list.gen || c.list.size == 0 {
		return false
	}
	return !c.started || c.curr != c.last()
}

// Next advances the cursor and returns the new current value.
func (c *Cursor[V]) Next() (V, error) {
	n, err := c.upcoming()
	if err != nil {
		var zero V
		return zero, err
	}
	c.curr = n
	c.started = true
	return n.Value, nil
}

// Peek returns the value Next would return without advancing.
func (c *Cursor[V]) Peek() (V, error) {
	n, err := c.upcoming()
	if err != nil {
		var zero V
		return zero, err
	}
	return n.Value, nil
}

// Value returns the current value.
func (c *Cursor[V]) Value() (V, error) {
	if err := c.checkCurrent(); err != nil {
		var zero V
		return zero, err
	}
	return c.curr.Value, nil
}

// Set replaces the current value.
func (c *Cursor[V]) Set(v V) error {
	if err := c.checkCurrent(); err != nil {
		return err
	}
	c.curr.Value = v
	return nil
}

// InsertBefore inserts v in front of the current element, as seen in the
// walking direction of the cursor. The cursor stays on its element.
func (c *Cursor[V]) InsertBefore(v V) error {
	if err := c.checkCurrent(); err != nil {
		return err
	}
	if c.reverse {
		c.list.linkAfter(c.curr, &Node[V]{Value: v})
	} else {
		c.list.linkBefore(c.curr, &Node[V]{Value: v})
	}
	c.synced("insert before")
	return nil
}

// InsertAfter inserts v after the current element, as seen in the walking
// direction of the cursor. The cursor stays on its element, so the next call
// to Next returns v.
func (c *Cursor[V]) InsertAfter(v V) error {
	if err := c.checkCurrent(); err != nil {
		return err
	}
	if c.reverse {
		c.list.linkBefore(c.curr, &Node[V]{Value: v})
	} else {
		c.list.linkAfter(c.curr, &Node[V]{Value: v})
	}
	c.synced("insert after")
	return nil
}

// Remove removes the current element. The cursor moves back onto the element
// it passed before, or before the first element if there is none, so that
// Next returns the element that followed the removed one.
func (c *Cursor[V]) Remove() error {
	if err := c.checkCurrent(); err != nil {
		return err
	}
	n := c.curr
	if n == c.first() {
		c.curr = nil
		c.started = false
	} else {
		if c.reverse {
			c.curr = n.next
		} else {
			c.curr = n.prev
		}
	}
	c.list.destroy(n)
	c.synced("remove")
	return nil
}

// Index returns the position of the current element in the list. This walks
// the list and should not be used in loops.
func (c *Cursor[V]) Index() (int, error) {
	if err := c.checkCurrent(); err != nil {
		return -1, err
	}
	i := 0
	for n := c.list.head; n != nil; n = n.next {
		if n == c.curr {
			return i, nil
		}
		i++
	}
	return -1, bag.ErrConcurrentModification
}

// Turn returns a cursor walking in the opposite direction, positioned on the
// current element.
func (c *Cursor[V]) Turn() (*Cursor[V], error) {
	if err := c.checkCurrent(); err != nil {
		return nil, err
	}
	return &Cursor[V]{
		list:    c.list,
		curr:    c.curr,
		reverse: !c.reverse,
		started: true,
		gen:     c.gen,
	}, nil
}

func (c *Cursor[V]) synced(msg string) {
	c.gen = c.list.gen
	c.list.trace(TraceCursor, msg, "reverse", c.reverse)
}

// linkBefore links the detached node n in front of at.
func (l *List[V]) linkBefore(at, n *Node[V]) {
	if at == l.head {
		join(n, at)
		l.makeHead(n)
	} else {
		join(at.prev, n)
		join(n, at)
	}
	l.size++
	l.gen++
}

// linkAfter links the detached node n after at.
func (l *List[V]) linkAfter(at, n *Node[V]) {
	if at == l.tail {
		join(at, n)
		l.makeTail(n)
	} else {
		join(n, at.next)
		join(at, n)
	}
	l.size++
	l.gen++
}
