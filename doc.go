// doc.go — package documentation for errcause
//
// Package errcause builds errors that carry a structured Cause instead of an
// opaque message, and dispatches caught errors to handlers by cause name with
// an exhaustiveness check done at configuration time.
//
// # Causes
//
// A Cause has five recognized slots (Name, Message, Code, Stack, Cause) plus
// ordered caller extras. A slot is present only when it holds a value; the
// zero Cause has no fields at all:
//
//	err := errcause.CreateError(errcause.Cause{
//		Name:    "ImATeapot",
//		Message: "I'm a teapot",
//		Code:    418,
//		Extra:   errcause.KV("pot", "earl grey"),
//	})
//	err.Cause().Fields() // map[code:418 message:I'm a teapot name:ImATeapot pot:earl grey]
//
// # Stacks
//
// Every factory (CreateError, New, Wrap, Taxonomy.Create) captures a trace and
// removes its own frame, so StackTrace begins at the caller:
//
//	ImATeapot: I'm a teapot
//	    at main.brew (/src/main.go:12)
//	    at main.main (/src/main.go:7)
//
// When the Cause carries a Stack string, or wraps an Error with a trace of its
// own, that trace follows on a new line prefixed "CAUSE: ".
//
// # Taxonomies and dispatch
//
// Declare the closed set of causes once, then build a dispatcher with one
// handler per name. A missing handler fails immediately with MissingHandler:
//
//	fetchErrors, handleFetchErrors := errcause.ErrorCauses(
//		errcause.Define("NotFound", errcause.Cause{Code: 404, Message: "The requested resource was not found"}),
//		errcause.Define("MissingURI", errcause.Cause{Code: 400, Message: "URI is required"}),
//	)
//
//	dispatch, err := handleFetchErrors(errcause.Handlers[any]{
//		"NotFound":   func(err error) any { return errcause.NameOf(err) },
//		"MissingURI": errcause.Noop,
//	})
//	if err != nil {
//		log.Fatal(err) // configuration bug
//	}
//
//	res, err := dispatch(errcause.CreateError(fetchErrors.MustGet("NotFound")))
//
// Dispatch returns MissingCause or MissingCauseName for malformed errors and
// UnexpectedError when no handler matches; all of them chain the original error
// and match the ErrMissingCause, ErrMissingCauseName and ErrUnexpected
// sentinels with errors.Is. Use NewDispatcher for handlers with a typed result.
//
// # Options
//
//   - Lazy(): skip the configuration check; a declared name without a handler
//     fails with MissingHandler when dispatched.
//   - Tolerant(): a missing Cause or name is treated as empty and ends in
//     UnexpectedError ("unknown").
//   - WithLogger(*zap.Logger): log configuration failures and unroutable errors.
//
// # Formatting
//
//   - %v, %s → Error(): "Name: message"
//   - %+v    → name, code, message, extras, nested cause (%+v) and the trace
//   - %q     → quoted Error()
//
// # Concurrency
//
// Errors, Causes, Taxonomies and Dispatchers are immutable after construction
// and safe to share across goroutines.
package errcause
