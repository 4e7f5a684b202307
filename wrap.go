// wrap.go — chaining helpers that operate on arbitrary errors.
//
// A chained error keeps the original as Cause.Cause, so errors.Is/As reach it
// through Unwrap and its trace (when it has one) follows the "CAUSE: " marker.
package errcause

// Wrap builds an Error from c with err attached as its nested cause.
// A nil err leaves c.Cause untouched.
func Wrap(err error, c Cause) Error {
	if err != nil {
		c.Cause = err
	}
	return newCausedError(c, 0)
}

// From converts any error into an Error without adding a name.
//   - nil → nil
//   - Error → returned as-is
//   - other error → a new Error whose message is err.Error() and whose cause is err
func From(err error) Error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(Error); ok {
		return ce
	}
	return newCausedError(Cause{Message: err.Error(), Cause: err}, 0)
}

// WithFields returns a new Error whose cause extends err's with kv extras.
// Non-Error inputs are converted with From first; nil stays nil.
func WithFields(err error, kv ...any) Error {
	if err == nil {
		return nil
	}
	switch ce := err.(type) {
	case *causedErr:
		n := *ce
		n.cause = ce.cause.WithFields(kv...).normalize()
		return &n
	case Error:
		return newCausedError(ce.Cause().WithFields(kv...), 0)
	}
	return newCausedError(Cause{Message: err.Error(), Cause: err}.WithFields(kv...), 0)
}
