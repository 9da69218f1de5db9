package node

import (
	"github.com/google/uuid"
	"github.com/speedata/wiredlist/backend/bag"
)

// Trace determines which operations of a list get logged.
type Trace int

const (
	// TraceSplice logs every insertion and removal of a chain.
	TraceSplice Trace = iota
	// TraceSegment logs the segment algorithms (swap, move, exchange, ...).
	TraceSegment
	// TraceCursor logs structural changes made through a cursor.
	TraceCursor
)

// SetTrace switches on the tracing t.
func (l *List[V]) SetTrace(t Trace) {
	l.tracing |= 1 << t
}

// ClearTrace switches off the tracing t.
func (l *List[V]) ClearTrace(t Trace) {
	l.tracing &^= (1 << t)
}

// IsTrace returns true if tracing t is set
func (l *List[V]) IsTrace(t Trace) bool {
	return (l.tracing>>t)&1 == 1
}

// ID returns an identifier for the list that is used in trace messages. It is
// assigned on first use.
func (l *List[V]) ID() string {
	if l.uid == "" {
		l.uid = uuid.NewString()
	}
	return l.uid
}

func (l *List[V]) trace(t Trace, msg string, keysAndValues ...any) {
	if l.tracing == 0 || !l.IsTrace(t) {
		return
	}
	bag.Logger.Debugw(msg, append([]any{"list", l.ID(), "size", l.size}, keysAndValues...)...)
}
