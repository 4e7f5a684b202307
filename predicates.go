// predicates.go — cause lookups over arbitrary errors.
//
// Lookups use errors.As, so they see through fmt.Errorf("%w") wrappers and
// errors.Join trees and report the first Error found in pre-order.
package errcause

import (
	"errors"
)

// CauseOf returns the Cause of the first Error in err's chain.
func CauseOf(err error) (Cause, bool) {
	if err == nil {
		return Cause{}, false
	}
	var ce Error
	if errors.As(err, &ce) {
		return ce.Cause(), true
	}
	return Cause{}, false
}

// NameOf returns the cause name of the first Error in err's chain, or "".
func NameOf(err error) string {
	c, _ := CauseOf(err)
	return c.Name
}

// CodeOf returns the cause code of the first Error in err's chain.
func CodeOf(err error) (any, bool) {
	c, ok := CauseOf(err)
	if !ok {
		return nil, false
	}
	return c.Get(KeyCode)
}

// HasName reports whether any Error in err's unwrap graph carries name.
func HasName(err error, name string) bool {
	if err == nil || name == "" {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if ce, ok := e.(Error); ok && ce.Name() == name {
			found = true
			return false
		}
		return true
	})
	return found
}

// Chain returns the causes of every Error in err's unwrap graph, outermost
// first (pre-order).
func Chain(err error) []Cause {
	var out []Cause
	Walk(err, func(e error) bool {
		if ce, ok := e.(Error); ok {
			out = append(out, ce.Cause())
		}
		return true
	})
	return out
}

// ChainNames is Chain reduced to cause names; nameless causes are skipped.
func ChainNames(err error) []string {
	var out []string
	for _, c := range Chain(err) {
		if c.Name != "" {
			out = append(out, c.Name)
		}
	}
	return out
}
