// context.go — ordered extra fields carried by a Cause.
//
// Design:
//   - Internal representation: append-only []Field (deterministic order).
//   - Builders are non-mutating: return NEW slices (no aliasing).
//   - Public view for callers: copy-on-read map[string]any.
//
// Go map iteration order is unspecified; the slice keeps caller insertion order so
// verbose formatting and structured logs are stable.
package errcause

// Field is a single caller-supplied key-value pair attached to a Cause beyond the
// recognized name/message/code/stack/cause slots.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of extras.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

// emptyFields is a canonical empty extras slice.
var emptyFields = make(fields, 0)

// KV parses alternating key/value arguments into Fields, for use in Cause.Extra.
//
//	errcause.CreateError(errcause.Cause{Name: "NotFound", Extra: errcause.KV("id", 42)})
func KV(kv ...any) []Field {
	fs := ctxFromKV(kv...)
	if len(fs) == 0 {
		return nil
	}
	return []Field(fs)
}

// ctxCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array when add is non-empty.
func ctxCloneAppend(dst fields, add ...Field) fields {
	n := len(dst)
	m := len(add)
	if m == 0 {
		if n == 0 {
			return emptyFields
		}
		return dst
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// ctxFromKV parses a variadic list of key-value arguments into fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - Keys MUST be strings; a non-string key drops the ENTIRE PAIR so the
//     following pairs stay aligned.
//   - A trailing key with no value becomes (key, nil).
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ctxClone returns an independent copy of fs.
func ctxClone(fs fields) fields {
	if len(fs) == 0 {
		return emptyFields
	}
	out := make(fields, len(fs))
	copy(out, fs)
	return out
}

// ctxLookup finds the last field named key (last-write-wins).
func ctxLookup(fs fields, key string) (any, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Key == key {
			return fs[i].Val, true
		}
	}
	return nil, false
}

// ctxMergeInto copies fs into m; later duplicate keys overwrite earlier ones.
func ctxMergeInto(m map[string]any, fs fields) {
	for _, f := range fs {
		m[f.Key] = f.Val
	}
}
