// builtin.go — the causes errcause itself raises.
//
// These form a small built-in taxonomy distinct from the ones callers declare:
//   - MissingHandler:   a handler table misses a declared cause (configuration time)
//   - MissingCause:     a dispatched error carries no Cause
//   - MissingCauseName: a dispatched error's Cause has no name
//   - UnexpectedError:  no handler is registered for the dispatched cause name
//
// Match them with errors.Is against the Err* sentinels, or with HasName.
package errcause

// Built-in cause names.
const (
	NameMissingHandler   = "MissingHandler"
	NameMissingCause     = "MissingCause"
	NameMissingCauseName = "MissingCauseName"
	NameUnexpectedError  = "UnexpectedError"
)

// unknownName stands in for an absent cause name in UnexpectedError messages.
const unknownName = "unknown"

// Base messages; the offending cause name is appended after ": " where relevant.
const (
	msgMissingHandler   = "Missing error handler"
	msgMissingCause     = "Missing error cause"
	msgMissingCauseName = "Missing error cause name"
	msgUnexpectedError  = "An unexpected error was thrown"
)

// Sentinels for errors.Is. They carry no stack; errors returned by the library
// match them by cause name.
var (
	ErrMissingHandler   Error = &causedErr{cause: Cause{Name: NameMissingHandler, Message: msgMissingHandler}}
	ErrMissingCause     Error = &causedErr{cause: Cause{Name: NameMissingCause, Message: msgMissingCause}}
	ErrMissingCauseName Error = &causedErr{cause: Cause{Name: NameMissingCauseName, Message: msgMissingCauseName}}
	ErrUnexpected       Error = &causedErr{cause: Cause{Name: NameUnexpectedError, Message: msgUnexpectedError}}
)

// allBuiltinNames is the ordered set of built-in names.
var allBuiltinNames = []string{
	NameMissingHandler,
	NameMissingCause,
	NameMissingCauseName,
	NameUnexpectedError,
}

var builtinNameSet = map[string]struct{}{
	NameMissingHandler:   {},
	NameMissingCause:     {},
	NameMissingCauseName: {},
	NameUnexpectedError:  {},
}

// BuiltinNames returns a copy of the built-in cause names in a stable order.
func BuiltinNames() []string {
	out := make([]string, len(allBuiltinNames))
	copy(out, allBuiltinNames)
	return out
}

// IsBuiltin reports whether name is one of the causes errcause raises itself.
func IsBuiltin(name string) bool {
	_, ok := builtinNameSet[name]
	return ok
}

// missingHandler is raised when no handler exists for a declared cause name.
func missingHandler(name string) Error {
	return newCausedError(Cause{
		Name:    NameMissingHandler,
		Message: msgMissingHandler + ": " + name,
	}, 0)
}

// missingCause chains err, which carries no Cause.
func missingCause(err error) Error {
	return newCausedError(Cause{
		Name:    NameMissingCause,
		Message: msgMissingCause,
		Cause:   err,
	}, 0)
}

// missingCauseName chains err, whose Cause has no name.
func missingCauseName(err error) Error {
	return newCausedError(Cause{
		Name:    NameMissingCauseName,
		Message: msgMissingCauseName,
		Cause:   err,
	}, 0)
}

// unexpected chains err, whose cause name matched no handler.
func unexpected(name string, err error) Error {
	if name == "" {
		name = unknownName
	}
	return newCausedError(Cause{
		Name:    NameUnexpectedError,
		Message: msgUnexpectedError + ": " + name,
		Cause:   err,
	}, 0)
}
