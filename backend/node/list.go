package node

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/speedata/wiredlist/backend/bag"
)

// Strategy decides what happens to nodes that are removed from a list for
// good.
type Strategy int

const (
	// Retain leaves discarded nodes alone. Fewer writes, but a detached node
	// that is still referenced keeps its neighbours reachable.
	Retain Strategy = iota
	// Scrub zeroes the value and the links of every discarded node so detached
	// subgraphs become unreachable right away.
	Scrub
)

func (s Strategy) String() string {
	if s == Scrub {
		return "scrub"
	}
	return "retain"
}

// List is a doubly linked list that is optimized for structural changes:
// moving, swapping, cutting and pasting whole segments is done by relinking
// the segment boundaries, never by copying values.
//
// The zero value for List is an empty list ready to use. A List is not safe
// for concurrent use.
type List[V any] struct {
	head, tail *Node[V]
	size       int
	// gen is incremented on every structural change.
	gen      uint64
	strategy Strategy
	equal    func(a, b V) bool
	hash     func(V) uint64
	tracing  Trace
	uid      string
}

// Option configures a List.
type Option[V any] func(*List[V])

// WithStrategy sets the removal strategy of the list.
func WithStrategy[V any](s Strategy) Option[V] {
	return func(l *List[V]) {
		l.strategy = s
	}
}

// WithEqual sets the function used by IndexOf, Contains, Equal and friends.
// The default compares with reflect.DeepEqual.
func WithEqual[V any](eq func(a, b V) bool) Option[V] {
	return func(l *List[V]) {
		l.equal = eq
	}
}

// WithHash sets the element hash used by Hash. It must be consistent with the
// equality function. The default hashes the value structurally, matching
// reflect.DeepEqual. If only WithEqual is given, Hash depends on the length of
// the list alone.
func WithHash[V any](h func(V) uint64) Option[V] {
	return func(l *List[V]) {
		l.hash = h
	}
}

// WithTrace switches on the given trace categories.
func WithTrace[V any](t ...Trace) Option[V] {
	return func(l *List[V]) {
		for _, tr := range t {
			l.SetTrace(tr)
		}
	}
}

// New returns an empty list that leaves discarded nodes to the garbage
// collector.
func New[V any](opts ...Option[V]) *List[V] {
	l := &List[V]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewScrubbing returns an empty list that scrubs every node it discards.
func NewScrubbing[V any](opts ...Option[V]) *List[V] {
	return New(append([]Option[V]{WithStrategy[V](Scrub)}, opts...)...)
}

// Of returns a list containing the values.
func Of[V any](values ...V) *List[V] {
	return FromSlice(values)
}

// FromSlice returns a list containing the values of the slice.
func FromSlice[V any](values []V, opts ...Option[V]) *List[V] {
	l := New(opts...)
	l.adopt(chainOf(values))
	return l
}

// FromSeq returns a list containing the values produced by seq.
func FromSeq[V any](seq iter.Seq[V], opts ...Option[V]) *List[V] {
	l := New(opts...)
	for v := range seq {
		l.Append(v)
	}
	return l
}

// Join concatenates the lists into a new list. The lists passed in are empty
// when Join returns. Nil lists are skipped.
func Join[V any](lists ...*List[V]) *List[V] {
	l := New[V]()
	for _, other := range lists {
		if other == nil || other.size == 0 {
			continue
		}
		l.attach(other)
	}
	return l
}

// derive returns an empty list with the same settings as l.
func (l *List[V]) derive() *List[V] {
	return &List[V]{
		strategy: l.strategy,
		equal:    l.equal,
		hash:     l.hash,
		tracing:  l.tracing,
	}
}

// fromChain wraps the chain in a new list with the settings of l.
func (l *List[V]) fromChain(c Chain[V]) *List[V] {
	nl := l.derive()
	nl.adopt(c)
	return nl
}

// adopt makes the chain the content of the (empty) list l.
func (l *List[V]) adopt(c Chain[V]) {
	if c.empty() {
		return
	}
	l.makeHead(c.head)
	l.makeTail(c.tail)
	l.size = c.length
	l.gen++
}

// reset forgets all nodes without touching them. Used when the nodes have
// been handed over to another list.
func (l *List[V]) reset() {
	l.head, l.tail = nil, nil
	l.size = 0
	l.gen++
}

// Len returns the number of elements of list l. The complexity is O(1).
func (l *List[V]) Len() int { return l.size }

// IsEmpty returns true if the list has no elements.
func (l *List[V]) IsEmpty() bool { return l.size == 0 }

// Strategy returns the removal strategy of the list.
func (l *List[V]) Strategy() Strategy { return l.strategy }

// Front returns the first node of list l or nil if the list is empty.
func (l *List[V]) Front() *Node[V] { return l.head }

// Back returns the last node of list l or nil if the list is empty.
func (l *List[V]) Back() *Node[V] { return l.tail }

func (l *List[V]) eq(a, b V) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

func (l *List[V]) elemHash(v V) uint64 {
	switch {
	case l.hash != nil:
		return l.hash(v)
	case l.equal != nil:
		// nothing is known about the custom equality, so every value hashes
		// alike and Hash only reflects the length
		return 0
	}
	return deepHash(v)
}

// Get returns the value at index.
func (l *List[V]) Get(index int) (V, error) {
	if err := bag.CheckIndex(index, l.size); err != nil {
		var zero V
		return zero, err
	}
	return l.nodeAt(index).Value, nil
}

// First returns the first value of the list.
func (l *List[V]) First() (V, error) {
	if l.size == 0 {
		var zero V
		return zero, bag.ErrNoSuchElement
	}
	return l.head.Value, nil
}

// Last returns the last value of the list.
func (l *List[V]) Last() (V, error) {
	if l.size == 0 {
		var zero V
		return zero, bag.ErrNoSuchElement
	}
	return l.tail.Value, nil
}

// IndexOf returns the index of the first occurrence of v or -1.
func (l *List[V]) IndexOf(v V) int {
	n := l.head
	for i := 0; i < l.size; i++ {
		if l.eq(v, n.Value) {
			return i
		}
		n = n.next
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v or -1.
func (l *List[V]) LastIndexOf(v V) int {
	n := l.tail
	for i := l.size - 1; i >= 0; i-- {
		if l.eq(v, n.Value) {
			return i
		}
		n = n.prev
	}
	return -1
}

// Contains returns true if v occurs in the list.
func (l *List[V]) Contains(v V) bool {
	return l.IndexOf(v) != -1
}

// ContainsAll returns true if every one of the values occurs in the list.
func (l *List[V]) ContainsAll(values ...V) bool {
	for _, v := range values {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// Equal returns true if other holds equal values in the same order.
func (l *List[V]) Equal(other *List[V]) bool {
	if l == other {
		return true
	}
	if other == nil || l.size != other.size {
		return false
	}
	for x, y := l.head, other.head; x != nil; x, y = x.next, y.next {
		if !l.eq(x.Value, y.Value) {
			return false
		}
	}
	return true
}

// Hash returns a hash code that is equal for lists that are Equal. Set
// WithHash together with WithEqual for a hash that spreads well.
func (l *List[V]) Hash() uint64 {
	var h uint64 = 1
	for n := l.head; n != nil; n = n.next {
		h = 31*h + l.elemHash(n.Value)
	}
	return h
}

func (l *List[V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// Slice returns the values of the list in a new slice.
func (l *List[V]) Slice() []V {
	ret := make([]V, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		ret = append(ret, n.Value)
	}
	return ret
}

// ToArray copies the values into dst if it is large enough and into a newly
// allocated slice otherwise. If dst is larger than the list, the slot right
// after the last value is set to the zero value. The returned slice always has
// the length of the list.
func (l *List[V]) ToArray(dst []V) []V {
	if len(dst) < l.size {
		return l.Slice()
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		dst[i] = n.Value
		i++
	}
	if len(dst) > l.size {
		var zero V
		dst[l.size] = zero
	}
	return dst[:l.size]
}

// All returns an iterator over index/value pairs from head to tail.
func (l *List[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index/value pairs from tail to head.
func (l *List[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.Value) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the values from head to tail.
func (l *List[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Copy returns a list with the same values and settings. The copy shares no
// nodes with l.
func (l *List[V]) Copy() *List[V] {
	return l.fromChain(copyChain(l.head, l.size))
}

// CopySegment returns a new list holding copies of the values in [from, to).
func (l *List[V]) CopySegment(from, to int) (*List[V], error) {
	length, err := bag.CheckFromTo(from, to, l.size)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return l.derive(), nil
	}
	return l.fromChain(copyChain(l.nodeAt(from), length)), nil
}
