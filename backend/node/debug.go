package node

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Debug outputs a colorful representation of the list to stdout.
func Debug[V any](l *List[V]) {
	Fdebug(color.Output, l)
}

// Fdebug writes a colorful representation of the list to w, one element per
// line.
func Fdebug[V any](w io.Writer, l *List[V]) {
	fmt.Fprintf(w, "list %s size %d strategy %s\n", l.ID(), l.size, l.strategy)
	i := 0
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(w, "%4d ", i)
		switch v := any(n.Value).(type) {
		case nil:
			color.New(color.FgHiBlack).Fprintln(w, "nil")
		case string:
			color.New(color.FgCyan).Fprintf(w, "%q\n", v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			color.New(color.FgHiGreen).Fprintf(w, "%d\n", v)
		case float32, float64:
			color.New(color.FgMagenta).Fprintf(w, "%g\n", v)
		case bool:
			color.New(color.FgHiBlue).Fprintf(w, "%t\n", v)
		case fmt.Stringer:
			color.New(color.FgHiMagenta).Fprintf(w, "%s\n", v)
		default:
			color.New(color.FgHiRed).Fprintf(w, "%v (%T)\n", v, v)
		}
		i++
	}
}
