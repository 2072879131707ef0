package vector

import (
	"fmt"
	"io"
	"strings"
)

// format renders values on one line, e.g. "(4, -2, 5)".
func format[T Number](values []T) string {
	sb := &strings.Builder{}
	sb.WriteByte('(')
	for i, val := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, val)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Column renders v as a column vector, one "( x )" line per element, with the
// elements right-aligned to the widest one. verb formats a single element
// and defaults to "%v".
func Column[T Number](v Vector[T], verb string) string {
	if verb == "" {
		verb = "%v"
	}
	values := v.Slice()
	cells := make([]string, len(values))
	width := 0
	for i, val := range values {
		cells[i] = fmt.Sprintf(verb, val)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	sb := &strings.Builder{}
	for _, c := range cells {
		fmt.Fprintf(sb, "( %*s )\n", width, c)
	}
	return sb.String()
}

// ToStrings formats v for display under a title line.
func ToStrings[T Number](v Vector[T], title, verb string) string {
	return title + "\n" + Column[T](v, verb)
}

// PrintVector writes the titled column view of v to w, followed by a blank
// line.
func PrintVector[T Number](w io.Writer, v Vector[T], title string) error {
	_, err := fmt.Fprintln(w, ToStrings[T](v, title, ""))
	return err
}
