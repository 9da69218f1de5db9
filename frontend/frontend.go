package frontend

import (
	"fmt"
	"io"
	"sort"

	"github.com/speedata/wiredlist/backend/bag"
	"github.com/speedata/wiredlist/backend/node"
)

// Workspace holds the named lists a script operates on.
type Workspace struct {
	Script *Script
	lists  map[string]*node.List[string]
	opts   []node.Option[string]
}

func initWorkspace(opts []node.Option[string]) *Workspace {
	return &Workspace{
		lists: make(map[string]*node.List[string]),
		opts:  opts,
	}
}

// New creates a workspace with the initial lists of the script. The options
// apply to every list of the workspace, including the ones created by steps.
func New(s *Script, opts ...node.Option[string]) *Workspace {
	ws := initWorkspace(opts)
	ws.Script = s
	if s != nil {
		for name, values := range s.Lists {
			ws.lists[name] = node.FromSlice(values, opts...)
		}
	}
	return ws
}

// Load reads the script in filename and creates a workspace for it.
func Load(filename string, opts ...node.Option[string]) (*Workspace, error) {
	s, err := LoadScript(filename)
	if err != nil {
		return nil, err
	}
	return New(s, opts...), nil
}

// Run executes all steps of the script. It stops at the first failing step.
// Every step is validated completely before a list is changed.
func (ws *Workspace) Run() error {
	if ws.Script == nil {
		return nil
	}
	for i, st := range ws.Script.Steps {
		bag.Logger.Debugf("step %d: %s %s", i+1, st.Op, st.List)
		if err := ws.Exec(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

// Exec executes a single step.
func (ws *Workspace) Exec(st Step) error {
	fn, ok := operations[st.Op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", bag.ErrInvalidArgument, st.Op)
	}
	return fn(ws, st)
}

// List returns the list with the given name.
func (ws *Workspace) List(name string) (*node.List[string], bool) {
	l, ok := ws.lists[name]
	return l, ok
}

// Names returns the names of all lists in sorted order.
func (ws *Workspace) Names() []string {
	names := make([]string, 0, len(ws.lists))
	for name := range ws.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fprint writes one line per list to w, sorted by name.
func (ws *Workspace) Fprint(w io.Writer) {
	for _, name := range ws.Names() {
		fmt.Fprintf(w, "%s: %s\n", name, ws.lists[name])
	}
}

// list returns an existing list.
func (ws *Workspace) list(name string) (*node.List[string], error) {
	if l, ok := ws.lists[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: no list named %q", bag.ErrInvalidArgument, name)
}

// store saves l under name, replacing a previous list of that name.
func (ws *Workspace) store(name string, l *node.List[string]) {
	ws.lists[name] = l
	bag.Logger.Debugf("store %s: %d elements", name, l.Len())
}
