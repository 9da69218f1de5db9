package frontend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speedata/wiredlist/backend/bag"
	"github.com/speedata/wiredlist/backend/node"
)

type operation func(*Workspace, Step) error

var operations = map[string]operation{
	"append":     opAppend,
	"prepend":    opPrepend,
	"insert":     opInsert,
	"set":        opSet,
	"replace":    opReplace,
	"remove":     opRemove,
	"move":       opMove,
	"swap":       opSwap,
	"exchange":   opExchange,
	"embed":      opEmbed,
	"transfer":   opTransfer,
	"attach":     opAttach,
	"cut":        opCut,
	"copy":       opCopy,
	"shrink":     opShrink,
	"reverse":    opReverse,
	"lchop":      opLChop,
	"rchop":      opRChop,
	"group":      opGroup,
	"defragment": opDefragment,
	"partition":  opPartition,
	"split":      opSplit,
	"clear":      opClear,
}

// Operations returns the sorted names of the operations a step can use.
func Operations() []string {
	ret := make([]string, 0, len(operations))
	for name := range operations {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// listOrNew returns the list with the given name, creating it if necessary.
func (ws *Workspace) listOrNew(name string) (*node.List[string], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing list name", bag.ErrInvalidArgument)
	}
	if l, ok := ws.lists[name]; ok {
		return l, nil
	}
	l := node.New(ws.opts...)
	ws.lists[name] = l
	return l, nil
}

// pair returns the list and the other list of a two-list step.
func (ws *Workspace) pair(st Step) (*node.List[string], *node.List[string], error) {
	l, err := ws.list(st.List)
	if err != nil {
		return nil, nil, err
	}
	other, err := ws.list(st.Other)
	if err != nil {
		return nil, nil, err
	}
	return l, other, nil
}

// checkInto makes sure the result name of st is free. A step that stores
// several lists (multi) also claims every name starting with "into.".
func (ws *Workspace) checkInto(st Step, multi bool) error {
	if err := st.into(); err != nil {
		return err
	}
	if st.Into == st.List || st.Into == st.Other {
		return fmt.Errorf("%w: %s cannot store its result in %q, the list it works on", bag.ErrInvalidArgument, st.Op, st.Into)
	}
	if _, ok := ws.lists[st.Into]; ok {
		return fmt.Errorf("%w: %s: a list named %q already exists", bag.ErrInvalidArgument, st.Op, st.Into)
	}
	if multi {
		prefix := st.Into + "."
		for name := range ws.lists {
			if strings.HasPrefix(name, prefix) {
				return fmt.Errorf("%w: %s: a list named %q already exists", bag.ErrInvalidArgument, st.Op, name)
			}
		}
	}
	return nil
}

// storeAll saves all lists but the last one as into.0, into.1, ... The last
// one is the list the step worked on and keeps its name.
func (ws *Workspace) storeAll(into string, lists []*node.List[string]) {
	for i, l := range lists[:len(lists)-1] {
		ws.store(fmt.Sprintf("%s.%d", into, i), l)
	}
}

func opAppend(ws *Workspace, st Step) error {
	l, err := ws.listOrNew(st.List)
	if err != nil {
		return err
	}
	l.AppendAll(st.Values...)
	return nil
}

func opPrepend(ws *Workspace, st Step) error {
	l, err := ws.listOrNew(st.List)
	if err != nil {
		return err
	}
	l.PrependAll(st.Values...)
	return nil
}

func opInsert(ws *Workspace, st Step) error {
	if err := st.args(1); err != nil {
		return err
	}
	size := 0
	if l, ok := ws.lists[st.List]; ok {
		size = l.Len()
	}
	if err := bag.CheckInclusive(st.Args[0], size); err != nil {
		return err
	}
	l, err := ws.listOrNew(st.List)
	if err != nil {
		return err
	}
	return l.InsertAll(st.Args[0], st.Values...)
}

func opSet(ws *Workspace, st Step) error {
	if err := st.args(1); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.SetAll(st.Args[0], st.Values...)
}

func opReplace(ws *Workspace, st Step) error {
	if err := st.args(2); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.Replace(st.Args[0], st.Args[1], st.Values...)
}

// opRemove removes the values matching any of the expressions, or the element
// at args[0], or the segment [args[0], args[1]).
func opRemove(ws *Workspace, st Step) error {
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	if len(st.Match) > 0 {
		preds, err := st.predicates()
		if err != nil {
			return err
		}
		l.RemoveIf(func(v string) bool {
			for _, p := range preds {
				if p(v) {
					return true
				}
			}
			return false
		})
		return nil
	}
	switch len(st.Args) {
	case 1:
		_, err = l.Remove(st.Args[0])
		return err
	case 2:
		return l.Replace(st.Args[0], st.Args[1])
	}
	return fmt.Errorf("%w: remove needs a match expression, an index or a segment", bag.ErrInvalidArgument)
}

func opMove(ws *Workspace, st Step) error {
	if err := st.args(3); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.Move(st.Args[0], st.Args[1], st.Args[2])
}

func opSwap(ws *Workspace, st Step) error {
	if err := st.args(4); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.Swap(st.Args[0], st.Args[1], st.Args[2], st.Args[3])
}

func opExchange(ws *Workspace, st Step) error {
	if err := st.args(4); err != nil {
		return err
	}
	l, other, err := ws.pair(st)
	if err != nil {
		return err
	}
	return l.Exchange(st.Args[0], st.Args[1], other, st.Args[2], st.Args[3])
}

func opEmbed(ws *Workspace, st Step) error {
	if err := st.args(1); err != nil {
		return err
	}
	l, other, err := ws.pair(st)
	if err != nil {
		return err
	}
	return l.Embed(st.Args[0], other)
}

func opTransfer(ws *Workspace, st Step) error {
	if err := st.args(3); err != nil {
		return err
	}
	l, other, err := ws.pair(st)
	if err != nil {
		return err
	}
	return l.Transfer(st.Args[0], other, st.Args[1], st.Args[2])
}

func opAttach(ws *Workspace, st Step) error {
	l, other, err := ws.pair(st)
	if err != nil {
		return err
	}
	return l.Attach(other)
}

func opCut(ws *Workspace, st Step) error {
	if err := st.args(2); err != nil {
		return err
	}
	if err := ws.checkInto(st, false); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	cut, err := l.Cut(st.Args[0], st.Args[1])
	if err != nil {
		return err
	}
	ws.store(st.Into, cut)
	return nil
}

// opCopy copies the whole list or the segment [args[0], args[1]).
func opCopy(ws *Workspace, st Step) error {
	if err := ws.checkInto(st, false); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	var c *node.List[string]
	switch len(st.Args) {
	case 0:
		c = l.Copy()
	case 2:
		if c, err = l.CopySegment(st.Args[0], st.Args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: copy needs no arguments or a segment", bag.ErrInvalidArgument)
	}
	ws.store(st.Into, c)
	return nil
}

func opShrink(ws *Workspace, st Step) error {
	if err := st.args(2); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.Shrink(st.Args[0], st.Args[1])
}

func opReverse(ws *Workspace, st Step) error {
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	l.Reverse()
	return nil
}

func chop(ws *Workspace, st Step, left bool) error {
	if err := ws.checkInto(st, false); err != nil {
		return err
	}
	pred, err := st.predicate()
	if err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	var chopped *node.List[string]
	if left {
		chopped, err = l.LChop(pred)
	} else {
		chopped, err = l.RChop(pred)
	}
	if err != nil {
		return err
	}
	if chopped == l {
		// everything matched, the list moves over as a whole
		chopped = node.New(ws.opts...)
		if err = chopped.Attach(l); err != nil {
			return err
		}
	}
	ws.store(st.Into, chopped)
	return nil
}

func opLChop(ws *Workspace, st Step) error { return chop(ws, st, true) }

func opRChop(ws *Workspace, st Step) error { return chop(ws, st, false) }

// opGroup stores the groups as into.0, into.1, ...; the values that match no
// expression stay in the list.
func opGroup(ws *Workspace, st Step) error {
	if err := ws.checkInto(st, true); err != nil {
		return err
	}
	preds, err := st.predicates()
	if err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	groups, err := l.Group(preds...)
	if err != nil {
		return err
	}
	ws.storeAll(st.Into, groups)
	return nil
}

func opDefragment(ws *Workspace, st Step) error {
	preds, err := st.predicates()
	if err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	return l.Defragment(st.Keep, preds...)
}

// opPartition stores all chunks but the last as into.0, into.1, ...; the last
// chunk stays in the list.
func opPartition(ws *Workspace, st Step) error {
	if err := st.args(1); err != nil {
		return err
	}
	if err := ws.checkInto(st, true); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	parts, err := l.Partition(st.Args[0])
	if err != nil {
		return err
	}
	ws.storeAll(st.Into, parts)
	return nil
}

func opSplit(ws *Workspace, st Step) error {
	if err := st.args(1); err != nil {
		return err
	}
	if err := ws.checkInto(st, true); err != nil {
		return err
	}
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	parts, err := l.Split(st.Args[0])
	if err != nil {
		return err
	}
	ws.storeAll(st.Into, parts)
	return nil
}

func opClear(ws *Workspace, st Step) error {
	l, err := ws.list(st.List)
	if err != nil {
		return err
	}
	l.Clear()
	return nil
}
