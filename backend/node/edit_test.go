package node

import (
	"errors"
	"testing"

	"github.com/speedata/wiredlist/backend/bag"
)

func TestSet(t *testing.T) {
	l := ints(5)
	old, err := l.Set(2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if old != 2 {
		t.Errorf("Set(2) returned %d, want 2", old)
	}
	if _, err = l.Set(5, 0); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Set(5) err = %v", err)
	}
	wantValues(t, l, 0, 1, 20, 3, 4)

	if err = l.SetAll(3, 30, 40); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 20, 30, 40)
	if err = l.SetAll(4, 1, 2); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("SetAll past the end err = %v", err)
	}
	if err = l.SetAll(5); err != nil {
		t.Errorf("SetAll(5) with no values err = %v", err)
	}

	even := func(i int) bool { return i%2 == 0 }
	if old, _ = l.SetIf(1, even, 100); old != 1 {
		t.Errorf("SetIf(1) returned %d", old)
	}
	if old, _ = l.SetIf(2, even, 200); old != 20 {
		t.Errorf("SetIf(2) returned %d", old)
	}
	wantValues(t, l, 0, 1, 200, 30, 40)
	if _, err = l.SetIf(0, nil, 1); !errors.Is(err, bag.ErrInvalidArgument) {
		t.Errorf("SetIf with nil predicate err = %v", err)
	}
}

func TestInsert(t *testing.T) {
	l := New[string]()
	data := []struct {
		index int
		value string
		want  []string
	}{
		{0, "c", []string{"c"}},
		{0, "a", []string{"a", "c"}},
		{1, "b", []string{"a", "b", "c"}},
		{3, "e", []string{"a", "b", "c", "e"}},
		{3, "d", []string{"a", "b", "c", "d", "e"}},
	}
	for _, d := range data {
		if err := l.Insert(d.index, d.value); err != nil {
			t.Fatal(err)
		}
		wantValues(t, l, d.want...)
	}
	if err := l.Insert(6, "x"); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Insert(6) err = %v", err)
	}
	if err := l.Insert(-1, "x"); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Insert(-1) err = %v", err)
	}
}

func TestInsertAll(t *testing.T) {
	l := ints(4)
	if err := l.InsertAll(2, 10, 11, 12); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 10, 11, 12, 2, 3)
	if err := l.InsertAll(7); err != nil {
		t.Fatal(err)
	}
	l.PrependAll(-2, -1)
	l.AppendAll(20, 21)
	wantValues(t, l, -2, -1, 0, 1, 10, 11, 12, 2, 3, 20, 21)
	l.AppendSeq(Of(30, 31).Values())
	wantValues(t, l, -2, -1, 0, 1, 10, 11, 12, 2, 3, 20, 21, 30, 31)

	e := New[int]()
	if err := e.InsertAll(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	wantValues(t, e, 1, 2)
}

func TestRemove(t *testing.T) {
	l := ints(6)
	v, err := l.Remove(0)
	if err != nil || v != 0 {
		t.Errorf("Remove(0) = %d, %v", v, err)
	}
	v, _ = l.Remove(4)
	if v != 5 {
		t.Errorf("Remove(4) = %d, want 5", v)
	}
	v, _ = l.Remove(1)
	if v != 2 {
		t.Errorf("Remove(1) = %d, want 2", v)
	}
	wantValues(t, l, 1, 3, 4)
	if _, err = l.Remove(3); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Remove(3) err = %v", err)
	}
	if !l.RemoveValue(3) {
		t.Error("RemoveValue(3) = false")
	}
	if l.RemoveValue(3) {
		t.Error("RemoveValue(3) twice = true")
	}
	wantValues(t, l, 1, 4)
	if err = l.DeleteFirst(); err != nil {
		t.Fatal(err)
	}
	if err = l.DeleteLast(); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l)
	if err = l.DeleteFirst(); !errors.Is(err, bag.ErrNoSuchElement) {
		t.Errorf("DeleteFirst on empty list err = %v", err)
	}
	if err = l.DeleteLast(); !errors.Is(err, bag.ErrNoSuchElement) {
		t.Errorf("DeleteLast on empty list err = %v", err)
	}
}

func TestRemoveIf(t *testing.T) {
	l := ints(10)
	if n := l.RemoveIf(func(i int) bool { return i%3 == 0 }); n != 4 {
		t.Errorf("RemoveIf removed %d elements, want 4", n)
	}
	wantValues(t, l, 1, 2, 4, 5, 7, 8)
	if n := l.RemoveAll(1, 8, 42); n != 2 {
		t.Errorf("RemoveAll removed %d elements, want 2", n)
	}
	wantValues(t, l, 2, 4, 5, 7)
	if n := l.RetainAll(4, 7); n != 2 {
		t.Errorf("RetainAll removed %d elements, want 2", n)
	}
	wantValues(t, l, 4, 7)
	if n := l.RemoveIf(nil); n != 0 {
		t.Errorf("RemoveIf(nil) removed %d elements", n)
	}
	if n := l.RemoveIf(func(int) bool { return true }); n != 2 {
		t.Errorf("RemoveIf(true) removed %d elements", n)
	}
	wantValues(t, l)
}

func TestReplace(t *testing.T) {
	data := []struct {
		from, to int
		values   []int
		want     []int
	}{
		{1, 3, []int{10, 20}, []int{0, 10, 20, 3, 4}},
		{1, 3, []int{10}, []int{0, 10, 3, 4}},
		{1, 3, []int{10, 20, 30}, []int{0, 10, 20, 30, 3, 4}},
		{2, 2, []int{10}, []int{0, 1, 10, 2, 3, 4}},
		{0, 5, nil, nil},
		{0, 5, []int{7}, []int{7}},
		{3, 5, nil, []int{0, 1, 2}},
	}
	for i, d := range data {
		l := ints(5)
		if err := l.Replace(d.from, d.to, d.values...); err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		wantValues(t, l, d.want...)
	}
	l := ints(5)
	l.ReplaceAll(func(i int) int { return i * i })
	wantValues(t, l, 0, 1, 4, 9, 16)
}

func TestShrink(t *testing.T) {
	data := []struct {
		from, to int
		want     []int
	}{
		{0, 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{0, 3, []int{0, 1, 2}},
		{7, 10, []int{7, 8, 9}},
		{2, 5, []int{2, 3, 4}},
		{4, 4, nil},
	}
	for _, strategy := range []Strategy{Retain, Scrub} {
		for _, d := range data {
			l := ints(10)
			l.strategy = strategy
			if err := l.Shrink(d.from, d.to); err != nil {
				t.Fatal(err)
			}
			wantValues(t, l, d.want...)
		}
	}
	if err := ints(3).Shrink(2, 1); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Shrink(2, 1) err = %v", err)
	}
}

func TestCutAndInsert(t *testing.T) {
	l := ints(10)
	cut, err := l.Cut(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	wantValues(t, cut, 3, 4, 5, 6)
	wantValues(t, l, 0, 1, 2, 7, 8, 9)
	if err = l.Embed(3, cut); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	wantValues(t, cut)

	empty, err := l.Cut(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	wantValues(t, empty)
	all, _ := l.Cut(0, 10)
	wantValues(t, l)
	wantValues(t, all, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestClear(t *testing.T) {
	l := ints(3)
	l.Clear()
	wantValues(t, l)
	l.Clear()
	l.Append(1)
	wantValues(t, l, 1)
}

func TestScrub(t *testing.T) {
	l := NewScrubbing[string]()
	l.AppendAll("a", "b", "c", "d")
	b := l.head.next
	if _, err := l.Remove(1); err != nil {
		t.Fatal(err)
	}
	if b.Value != "" || b.prev != nil || b.next != nil {
		t.Errorf("removed node not scrubbed: %q %v %v", b.Value, b.prev, b.next)
	}
	c, d := l.head.next, l.tail
	l.Clear()
	if c.Value != "" || d.Value != "" || c.next != nil || d.prev != nil {
		t.Error("cleared nodes not scrubbed")
	}

	// A retaining list leaves the value in place.
	r := Of("a", "b")
	n := r.head
	r.Remove(0)
	if n.Value != "a" {
		t.Errorf("retained node value = %q, want a", n.Value)
	}
}

func TestScrubKeepsMovedNodes(t *testing.T) {
	l := NewScrubbing[int]()
	l.AppendAll(0, 1, 2, 3, 4)
	cut, err := l.Cut(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if cut.Strategy() != Scrub {
		t.Error("cut list lost the strategy")
	}
	wantValues(t, cut, 1, 2)
	if err = l.Rewire(0, 2, cut); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 1, 2, 3, 4)
}
