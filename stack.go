// stack.go — stack capture and stack-text rendering for errcause.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame resolution
//     (handles inlining correctly).
//   - Render a plain "\n"-joined text form: a header line, then one "at" line
//     per frame. Every stack edit (factory-frame removal, CAUSE chaining) is a
//     pure transform on that text.
package errcause

import (
	"runtime"
	"strconv"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture on exceptional paths.
	defaultMaxDepth = 64

	// causePrefix introduces a nested stack appended to an error's own stack text.
	causePrefix = "CAUSE: "

	framePrefix = "    at "
)

// captureStackDefault captures a stack skipping 'skip' frames, with the default
// depth bound.
//
// Skip model: with skip=0 the first recorded frame is the caller of
// captureStackDefault. captureStack adds +3 to hide runtime.Callers,
// captureStack and captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// String renders the frames as "at" lines without a header.
func (s Stack) String() string {
	var b strings.Builder
	for i, fr := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeFrame(&b, fr)
	}
	return b.String()
}

func writeFrame(b *strings.Builder, fr Frame) {
	b.WriteString(framePrefix)
	b.WriteString(fr.Function)
	b.WriteString(" (")
	b.WriteString(fr.File)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(fr.Line))
	b.WriteByte(')')
}

// renderStack produces the text form: header line followed by the frames.
func renderStack(header string, s Stack) string {
	var b strings.Builder
	b.WriteString(header)
	for _, fr := range s {
		b.WriteByte('\n')
		writeFrame(&b, fr)
	}
	return b.String()
}

// stackHeader mirrors the first line of a conventional trace: "Name: message".
func stackHeader(name, msg string) string {
	if name == "" {
		name = "Error"
	}
	if msg == "" {
		return name
	}
	return name + ": " + msg
}

// chainStack appends a nested stack on a new line prefixed with "CAUSE: ".
// An empty nested stack leaves own untouched.
func chainStack(own, nested string) string {
	if nested == "" {
		return own
	}
	return own + "\n" + causePrefix + nested
}

// filterStack removes exactly the second line of a "\n"-joined stack text. With
// a header-first trace that line is the frame of the function that built the
// error, so the visible trace begins at its caller. No other line is touched.
func filterStack(stack string) string {
	first := strings.IndexByte(stack, '\n')
	if first < 0 {
		return stack
	}
	second := strings.IndexByte(stack[first+1:], '\n')
	if second < 0 {
		return stack[:first]
	}
	return stack[:first] + stack[first+1+second:]
}

// nestedStack returns the stack text a Cause contributes to its error: the
// caller-supplied Stack when present, otherwise the trace of the nested error.
func nestedStack(c Cause) string {
	if c.Stack != "" {
		return c.Stack
	}
	if c.Cause == nil {
		return ""
	}
	if st, ok := c.Cause.(interface{ StackTrace() string }); ok {
		return st.StackTrace()
	}
	return ""
}
