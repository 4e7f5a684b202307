// typed_field.go — optional, type-safe access to Cause extras.
//
// Usage
//
//	var FUserID = errcause.FieldOf[int64]("user_id")
//
//	err := errcause.CreateError(FUserID.Set(errcause.Cause{Name: "NotFound"}, 42))
//	id, ok := FUserID.From(err) // id=42, ok=true
//
// The dynamic type stored under the key MUST match T exactly; no conversions are
// made.
package errcause

import (
	"fmt"
)

// TypedField reads and writes one extra key of a Cause as a T.
type TypedField[T any] struct {
	key string
}

// FieldOf constructs a TypedField[T] for key. Recognized keys (name, message,
// code, stack, cause) are accepted for reads; writes to them are dropped when
// the Cause is attached to an error.
func FieldOf[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying key.
func (f TypedField[T]) Key() string { return f.key }

// Set returns a copy of c with key = val appended to its extras.
func (f TypedField[T]) Set(c Cause, val T) Cause {
	return c.With(f.key, any(val))
}

// Get returns the value stored under key when present with dynamic type T.
func (f TypedField[T]) Get(c Cause) (T, bool) {
	var zero T
	v, ok := c.Get(f.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// From is Get applied to the Cause of the first Error in err's chain.
func (f TypedField[T]) From(err error) (T, bool) {
	c, ok := CauseOf(err)
	if !ok {
		var zero T
		return zero, false
	}
	return f.Get(c)
}

// MustGet is Get that panics when the field is missing or has a different
// dynamic type. Intended for tests and invariants.
func (f TypedField[T]) MustGet(c Cause) T {
	var zero T
	v, ok := c.Get(f.key)
	if !ok {
		panic(fmt.Errorf("errcause.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("errcause.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
