// unwrap.go — cycle-safe traversal over single- and multi-wrapped errors.
//
// errors.Unwrap only calls Unwrap() error, while errors.Join produces
// Unwrap() []error; Walk follows both forms.
//
// map[error] cannot be used as a "seen" set: a struct type is comparable even
// when an interface field holds an unhashable value, and hashing it panics.
// Only pointer dynamics are tracked, by (type, address); everything else is
// treated as acyclic and bounded by maxWalkDepth.
package errcause

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxWalkDepth caps traversal of runaway graphs.
const maxWalkDepth = 1 << 12

// ptrKey identifies a pointer-typed error. The type is part of the key because
// a struct and its first field share an address.
type ptrKey struct {
	typ  reflect.Type
	addr uintptr
}

func ptrID(err error) (ptrKey, bool) {
	if err == nil {
		return ptrKey{}, false
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ptrKey{}, false
	}
	return ptrKey{typ: v.Type(), addr: v.Pointer()}, true
}

// markSeen returns true if err was newly marked; false if already seen.
// Non-pointer dynamic types are always reported as new.
func markSeen(err error, seen map[ptrKey]struct{}) bool {
	if err == nil {
		return false
	}
	id, ok := ptrID(err)
	if !ok {
		return true
	}
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	return true
}

// Walk visits each distinct node of err's unwrap graph in pre-order (visit
// before children, children left to right). It stops when visit returns false.
// nil err or nil visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	stack := make([]error, 0, 8)
	seen := make(map[ptrKey]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seen)

	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seen) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seen) {
				stack = append(stack, c)
			}
		}
	}
}
