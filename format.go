// format.go — fmt.Formatter for errcause errors.
//
// Behavior:
//   - %s, %v: concise string (Error()).
//   - %q: quoted Error().
//   - %+v: verbose, structured multi-line format.
//
// The verbose form is:
//
//	name=<name> code=<code> msg="<message>"
//	fields: key1=val1 key2=val2 ...
//	cause: <recursively formatted with %+v>
//	stack:
//	<StackTrace text>
package errcause

import (
	"fmt"
	"io"
)

func (e *causedErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func formatVerbose(w io.Writer, e *causedErr) {
	c := e.cause
	if c.Name != "" {
		_, _ = fmt.Fprintf(w, "name=%s ", c.Name)
	}
	if codePresent(c.Code) {
		_, _ = fmt.Fprintf(w, "code=%v ", c.Code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", c.Message)

	if len(c.Extra) > 0 {
		_, _ = io.WriteString(w, "\nfields:")
		for _, f := range c.Extra {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if c.Cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", c.Cause)
	}

	if e.stack != "" {
		_, _ = io.WriteString(w, "\nstack:\n")
		_, _ = io.WriteString(w, e.stack)
	}
}
