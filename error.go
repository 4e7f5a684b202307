// Package errcause builds errors that carry a structured, chainable Cause and
// routes caught errors to handlers by cause name.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As and errors.Join.
//   - Immutable values: a Cause never changes after it is attached.
//   - Fail fast: a handler table that misses a declared cause is a
//     configuration bug, reported before anything is dispatched.
package errcause

// Error is an error carrying a Cause record.
//
// Implementations are immutable and safe to share across goroutines.
type Error interface {
	error

	// Cause returns a copy of the attached record.
	Cause() Cause

	// Name is shorthand for Cause().Name.
	Name() string

	// Message is the cause message verbatim; empty when none was given.
	Message() string

	// StackTrace returns the "\n"-joined trace text. The first line is the
	// "Name: message" header, the frame of the constructing factory is removed,
	// and a nested trace is appended after a "CAUSE: " prefix.
	StackTrace() string

	// Frames returns the frames rendered in StackTrace, starting at the caller
	// of the factory.
	Frames() Stack

	// Unwrap returns Cause().Cause so errors.Is/As observe the chain.
	Unwrap() error
}
