package errcause

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Recognized Cause keys. Extras using one of these keys are dropped when a Cause
// is normalized; the typed slots always win.
const (
	KeyName    = "name"
	KeyMessage = "message"
	KeyCode    = "code"
	KeyStack   = "stack"
	KeyCause   = "cause"
)

// recognizedKeys lists the typed slots in their canonical order.
var recognizedKeys = [...]string{KeyName, KeyMessage, KeyCode, KeyStack, KeyCause}

// Cause is the structured payload describing why an error occurred.
//
// A field is present if and only if it holds a value: strings must be non-empty,
// Code must be neither nil nor "", Cause must be non-nil. Extra entries are
// passed through verbatim.
//
// A Cause attached to an Error is never mutated; Error.Cause returns a copy.
type Cause struct {
	Name    string
	Message string
	Code    any
	Stack   string
	Cause   error
	Extra   []Field
}

func isRecognized(key string) bool {
	for _, k := range recognizedKeys {
		if k == key {
			return true
		}
	}
	return false
}

func codePresent(code any) bool {
	if code == nil {
		return false
	}
	if s, ok := code.(string); ok && s == "" {
		return false
	}
	return true
}

// normalize returns a copy of c holding only present fields, with an owned extras
// slice that excludes keys shadowing recognized slots.
func (c Cause) normalize() Cause {
	out := Cause{
		Name:    c.Name,
		Message: c.Message,
		Stack:   c.Stack,
		Cause:   c.Cause,
	}
	if codePresent(c.Code) {
		out.Code = c.Code
	}
	if len(c.Extra) > 0 {
		kept := make([]Field, 0, len(c.Extra))
		for _, f := range c.Extra {
			if isRecognized(f.Key) {
				continue
			}
			kept = append(kept, f)
		}
		if len(kept) > 0 {
			out.Extra = kept
		}
	}
	return out
}

// clone returns a copy whose Extra slice does not alias c's.
func (c Cause) clone() Cause {
	if len(c.Extra) > 0 {
		c.Extra = []Field(ctxClone(fields(c.Extra)))
	}
	return c
}

// Has reports whether key is present on c under the existence rule.
func (c Cause) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Get returns the value stored under key and whether it is present.
func (c Cause) Get(key string) (any, bool) {
	switch key {
	case KeyName:
		return c.Name, c.Name != ""
	case KeyMessage:
		return c.Message, c.Message != ""
	case KeyCode:
		return c.Code, codePresent(c.Code)
	case KeyStack:
		return c.Stack, c.Stack != ""
	case KeyCause:
		return c.Cause, c.Cause != nil
	}
	return ctxLookup(fields(c.Extra), key)
}

// Fields returns a new map holding exactly the present fields of c.
// Duplicate extra keys resolve last-write-wins.
func (c Cause) Fields() map[string]any {
	m := make(map[string]any, len(recognizedKeys)+len(c.Extra))
	ctxMergeInto(m, fields(c.Extra))
	// Recognized slots never come from extras.
	for _, k := range recognizedKeys {
		delete(m, k)
		if v, ok := c.Get(k); ok {
			m[k] = v
		}
	}
	return m
}

// With returns a copy of c with an extra key-value appended.
func (c Cause) With(key string, val any) Cause {
	c.Extra = []Field(ctxCloneAppend(fields(c.Extra), Field{Key: key, Val: val}))
	return c
}

// WithFields returns a copy of c with kv parsed as extras and appended.
func (c Cause) WithFields(kv ...any) Cause {
	c.Extra = []Field(ctxCloneAppend(fields(c.Extra), ctxFromKV(kv...)...))
	if len(c.Extra) == 0 {
		c.Extra = nil
	}
	return c
}

// IsZero reports whether no field of c is present.
func (c Cause) IsZero() bool {
	return len(c.Fields()) == 0
}

// MarshalLogObject renders the present fields of c for zap.
func (c Cause) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if c.Name != "" {
		enc.AddString(KeyName, c.Name)
	}
	if c.Message != "" {
		enc.AddString(KeyMessage, c.Message)
	}
	if codePresent(c.Code) {
		if err := enc.AddReflected(KeyCode, c.Code); err != nil {
			return err
		}
	}
	if c.Stack != "" {
		enc.AddString(KeyStack, c.Stack)
	}
	if c.Cause != nil {
		enc.AddString(KeyCause, c.Cause.Error())
	}
	for _, f := range c.Extra {
		if f.Key == "" || isRecognized(f.Key) {
			continue
		}
		if err := enc.AddReflected(f.Key, f.Val); err != nil {
			return fmt.Errorf("errcause: marshal field %q: %w", f.Key, err)
		}
	}
	return nil
}

var _ zapcore.ObjectMarshaler = Cause{}
