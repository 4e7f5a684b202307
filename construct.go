// construct.go — the concrete chained error and its factories.
//
// Every factory in this file captures the stack with its own frame on top and
// then drops that frame with filterStack, so traces begin at the caller.
package errcause

import (
	"strings"
)

// causedErr is the single concrete Error implementation.
type causedErr struct {
	cause Cause
	stk   Stack
	stack string
}

func (e *causedErr) Error() string {
	switch {
	case e.cause.Name != "" && e.cause.Message != "":
		return e.cause.Name + ": " + e.cause.Message
	case e.cause.Message != "":
		return e.cause.Message
	case e.cause.Name != "":
		return e.cause.Name
	}
	return "error"
}

func (e *causedErr) Cause() Cause       { return e.cause.clone() }
func (e *causedErr) Name() string       { return e.cause.Name }
func (e *causedErr) Message() string    { return e.cause.Message }
func (e *causedErr) StackTrace() string { return e.stack }
func (e *causedErr) Unwrap() error      { return e.cause.Cause }

func (e *causedErr) Frames() Stack {
	if len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}

// Is matches another Error carrying the same non-empty cause name, which makes
// the exported sentinels (ErrUnexpected, ...) usable with errors.Is.
func (e *causedErr) Is(target error) bool {
	t, ok := target.(*causedErr)
	if !ok || t == nil {
		return false
	}
	return e.cause.Name != "" && e.cause.Name == t.cause.Name
}

// newCausedError builds the error for c. skip counts frames above the
// immediate caller of newCausedError; with skip=0 the caller's frame is the
// top frame, which is then removed from the trace.
func newCausedError(c Cause, skip int) *causedErr {
	c = c.normalize()
	stk := captureStackDefault(skip + 1)

	header := strings.ReplaceAll(stackHeader(c.Name, c.Message), "\n", " ")
	text := chainStack(renderStack(header, stk), nestedStack(c))
	if len(stk) > 0 {
		text = filterStack(text)
		stk = stk[1:]
	}
	return &causedErr{cause: c, stk: stk, stack: text}
}

// CreateError builds an Error from c. Only the present fields of c are kept
// (see Cause); extras pass through verbatim. The zero Cause yields an error
// with an empty record and an empty message. CreateError never fails.
func CreateError(c Cause) Error {
	return newCausedError(c, 0)
}

// New creates an Error with a name, a message and optional extra key-values.
func New(name, msg string, kv ...any) Error {
	return newCausedError(Cause{Name: name, Message: msg, Extra: KV(kv...)}, 0)
}

var _ Error = (*causedErr)(nil)
