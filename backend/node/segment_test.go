package node

import (
	"errors"
	"testing"

	"github.com/speedata/wiredlist/backend/bag"
)

func TestMove(t *testing.T) {
	data := []struct {
		from, to, newFrom int
		want              []int
	}{
		{0, 4, 1, []int{4, 0, 1, 2, 3, 5, 6, 7, 8, 9}},
		{0, 4, 2, []int{4, 5, 0, 1, 2, 3, 6, 7, 8, 9}},
		{0, 4, 6, []int{4, 5, 6, 7, 8, 9, 0, 1, 2, 3}},
		{1, 6, 2, []int{0, 6, 1, 2, 3, 4, 5, 7, 8, 9}},
		{1, 6, 4, []int{0, 6, 7, 8, 1, 2, 3, 4, 5, 9}},
		{1, 6, 5, []int{0, 6, 7, 8, 9, 1, 2, 3, 4, 5}},
		{0, 1, 4, []int{1, 2, 3, 4, 0, 5, 6, 7, 8, 9}},
		{7, 9, 8, []int{0, 1, 2, 3, 4, 5, 6, 9, 7, 8}},
		{0, 9, 1, []int{9, 0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{6, 8, 4, []int{0, 1, 2, 3, 6, 7, 4, 5, 8, 9}},
		{8, 10, 6, []int{0, 1, 2, 3, 4, 5, 8, 9, 6, 7}},
		{2, 4, 0, []int{2, 3, 0, 1, 4, 5, 6, 7, 8, 9}},
		{3, 8, 1, []int{0, 3, 4, 5, 6, 7, 1, 2, 8, 9}},
		{1, 10, 0, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}},
		{9, 10, 0, []int{9, 0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{3, 5, 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{3, 3, 7, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{0, 10, 0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, d := range data {
		l := ints(10)
		if err := l.Move(d.from, d.to, d.newFrom); err != nil {
			t.Fatalf("Move(%d, %d, %d): %v", d.from, d.to, d.newFrom, err)
		}
		wantValues(t, l, d.want...)
	}
}

func TestMoveBack(t *testing.T) {
	data := []struct{ from, to, newFrom int }{
		{1, 6, 4},
		{0, 4, 6},
		{3, 8, 1},
		{9, 10, 0},
	}
	for _, d := range data {
		l := ints(10)
		if err := l.Move(d.from, d.to, d.newFrom); err != nil {
			t.Fatal(err)
		}
		length := d.to - d.from
		if err := l.Move(d.newFrom, d.newFrom+length, d.from); err != nil {
			t.Fatal(err)
		}
		wantValues(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	}
}

func TestMoveErrors(t *testing.T) {
	l := ints(10)
	data := []struct{ from, to, newFrom int }{
		{0, 4, 7},
		{0, 4, -1},
		{5, 4, 0},
		{8, 11, 0},
	}
	for _, d := range data {
		if err := l.Move(d.from, d.to, d.newFrom); !errors.Is(err, bag.ErrIndexOutOfRange) {
			t.Errorf("Move(%d, %d, %d) err = %v", d.from, d.to, d.newFrom, err)
		}
	}
	wantValues(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestSwap(t *testing.T) {
	data := []struct {
		from1, to1, from2, to2 int
		want                   []int
	}{
		{0, 2, 2, 4, []int{2, 3, 0, 1, 4, 5, 6, 7, 8, 9}},
		{0, 1, 9, 10, []int{9, 1, 2, 3, 4, 5, 6, 7, 8, 0}},
		{1, 3, 5, 8, []int{0, 5, 6, 7, 3, 4, 1, 2, 8, 9}},
		{5, 8, 1, 3, []int{0, 5, 6, 7, 3, 4, 1, 2, 8, 9}},
		{0, 5, 5, 10, []int{5, 6, 7, 8, 9, 0, 1, 2, 3, 4}},
		{4, 5, 5, 6, []int{0, 1, 2, 3, 5, 4, 6, 7, 8, 9}},
		{0, 3, 7, 10, []int{7, 8, 9, 3, 4, 5, 6, 0, 1, 2}},
	}
	for _, d := range data {
		l := ints(10)
		if err := l.Swap(d.from1, d.to1, d.from2, d.to2); err != nil {
			t.Fatal(err)
		}
		wantValues(t, l, d.want...)
	}
}

func TestSwapBack(t *testing.T) {
	l := ints(10)
	if err := l.Swap(1, 3, 6, 10); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 6, 7, 8, 9, 3, 4, 5, 1, 2)
	// the segments changed places and lengths
	if err := l.Swap(1, 5, 8, 10); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestSwapErrors(t *testing.T) {
	l := ints(10)
	data := []struct {
		from1, to1, from2, to2 int
		err                    error
	}{
		{0, 0, 2, 4, bag.ErrInvalidSegment},
		{0, 2, 5, 5, bag.ErrInvalidSegment},
		{0, 3, 2, 4, bag.ErrInvalidSegment},
		{5, 8, 1, 6, bag.ErrInvalidSegment},
		{0, 2, 8, 11, bag.ErrIndexOutOfRange},
	}
	for _, d := range data {
		if err := l.Swap(d.from1, d.to1, d.from2, d.to2); !errors.Is(err, d.err) {
			t.Errorf("Swap(%d, %d, %d, %d) err = %v, want %v", d.from1, d.to1, d.from2, d.to2, err, d.err)
		}
	}
	wantValues(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestExchange(t *testing.T) {
	l := Of[any](0, 1, 2, 3, 4, 5)
	other := Of[any]("0", "1", "2", "3", "4", "5")
	if err := l.Exchange(1, 3, other, 1, 3); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, "1", "2", 3, 4, 5)
	wantValues(t, other, "0", 1, 2, "3", "4", "5")

	l = Of[any](0, 1, 2, 3, 4, 5)
	other = Of[any]("00", "11", "22", "33", "44", "55")
	if err := l.Exchange(0, 6, other, 1, 1); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l)
	wantValues(t, other, "00", 0, 1, 2, 3, 4, 5, "11", "22", "33", "44", "55")

	l = Of[any](0, 1, 2, 3, 4, 5)
	other = Of[any]("00", "11", "22", "33", "44", "55")
	if err := l.Exchange(4, 4, other, 1, 5); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 2, 3, "11", "22", "33", "44", 4, 5)
	wantValues(t, other, "00", "55")
}

func TestExchangeWholeLists(t *testing.T) {
	l := ints(3)
	other := Of(10, 11, 12, 13)
	if err := l.Exchange(0, 3, other, 0, 4); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 10, 11, 12, 13)
	wantValues(t, other, 0, 1, 2)
	if err := l.Exchange(3, 4, other, 0, 1); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 10, 11, 12, 0)
	wantValues(t, other, 13, 1, 2)
}

func TestExchangeErrors(t *testing.T) {
	l := ints(3)
	if err := l.Exchange(0, 1, l, 1, 2); !errors.Is(err, bag.ErrSelfEmbed) {
		t.Errorf("Exchange with itself err = %v", err)
	}
	if err := l.Exchange(0, 1, nil, 0, 0); !errors.Is(err, bag.ErrInvalidArgument) {
		t.Errorf("Exchange with nil err = %v", err)
	}
	if err := l.Exchange(0, 1, ints(2), 0, 3); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Exchange out of range err = %v", err)
	}
}

func TestTransfer(t *testing.T) {
	l := ints(10)
	cl := FromSlice([]int{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j'})
	if err := l.Transfer(4, cl, 3, 9); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, 0, 1, 2, 3, 'd', 'e', 'f', 'g', 'h', 'i', 4, 5, 6, 7, 8, 9)
	wantValues(t, cl, 'a', 'b', 'c', 'j')

	if err := l.Transfer(16, cl, 0, 4); err != nil {
		t.Fatal(err)
	}
	wantValues(t, cl)
	if got, _ := l.Last(); got != 'j' {
		t.Errorf("Last() = %d, want %d", got, 'j')
	}
	if err := l.Transfer(0, cl, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Transfer(21, ints(2), 0, 1); !errors.Is(err, bag.ErrIndexOutOfRange) {
		t.Errorf("Transfer(21) err = %v", err)
	}
}

func TestEmbedAttachPaste(t *testing.T) {
	l := Of("a", "e")
	mid := Of("b", "c", "d")
	if err := l.Embed(1, mid); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, "a", "b", "c", "d", "e")
	wantValues(t, mid)
	if err := l.Embed(0, mid); err != nil {
		t.Fatal(err)
	}
	if err := l.Embed(1, l); !errors.Is(err, bag.ErrSelfEmbed) {
		t.Errorf("Embed(l) err = %v", err)
	}

	tail := Of("f", "g")
	if err := l.Attach(tail); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, "a", "b", "c", "d", "e", "f", "g")
	wantValues(t, tail)

	head := Of("0")
	if err := head.Paste(l, 0); err != nil {
		t.Fatal(err)
	}
	wantValues(t, l, "0", "a", "b", "c", "d", "e", "f", "g")
	wantValues(t, head)
	if err := head.Paste(nil, 0); !errors.Is(err, bag.ErrInvalidArgument) {
		t.Errorf("Paste(nil) err = %v", err)
	}
}

func TestRewire(t *testing.T) {
	data := []struct {
		from, to int
		other    []int
		want     []int
	}{
		{2, 4, []int{20, 30, 40}, []int{0, 1, 20, 30, 40, 4, 5}},
		{0, 6, []int{7}, []int{7}},
		{3, 3, []int{7, 8}, []int{0, 1, 2, 7, 8, 3, 4, 5}},
		{1, 5, nil, []int{0, 5}},
		{6, 6, []int{6}, []int{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, d := range data {
		l := ints(6)
		other := FromSlice(d.other)
		if err := l.Rewire(d.from, d.to, other); err != nil {
			t.Fatal(err)
		}
		wantValues(t, l, d.want...)
		wantValues(t, other)
	}
}

func TestReverse(t *testing.T) {
	for size := 0; size < 6; size++ {
		l := ints(size)
		l.Reverse()
		want := make([]int, size)
		for i := range want {
			want[i] = size - 1 - i
		}
		wantValues(t, l, want...)
	}
}
