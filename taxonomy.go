package errcause

import (
	"fmt"
	"sort"
)

// Definition is a named cause template registered in a Taxonomy.
type Definition struct {
	Name     string
	Template Cause
}

// Define pairs a cause name with its template. The name always wins over any
// Name set on the template.
func Define(name string, template Cause) Definition {
	return Definition{Name: name, Template: template}
}

// Taxonomy is the closed, ordered set of cause definitions a dispatcher is
// checked against. It is immutable; the zero value is an empty taxonomy.
type Taxonomy struct {
	names []string
	defs  map[string]Cause
}

// NewTaxonomy builds a Taxonomy in declaration order. A repeated name keeps its
// first position and takes the last template.
func NewTaxonomy(defs ...Definition) Taxonomy {
	t := Taxonomy{
		names: make([]string, 0, len(defs)),
		defs:  make(map[string]Cause, len(defs)),
	}
	for _, d := range defs {
		c := d.Template.normalize()
		c.Name = d.Name
		if _, seen := t.defs[d.Name]; !seen {
			t.names = append(t.names, d.Name)
		}
		t.defs[d.Name] = c
	}
	return t
}

// ErrorCauses declares a taxonomy and returns it along with a factory for
// dispatchers that must handle every declared name.
//
//	fetchErrors, handleFetchErrors := errcause.ErrorCauses(
//		errcause.Define("NotFound", errcause.Cause{Code: 404, Message: "The requested resource was not found"}),
//		errcause.Define("MissingURI", errcause.Cause{Code: 400, Message: "URI is required"}),
//	)
func ErrorCauses(defs ...Definition) (Taxonomy, DispatcherFactory) {
	t := NewTaxonomy(defs...)
	return t, t.factory()
}

// ErrorCausesMap is ErrorCauses over a map. Maps are unordered, so names are
// declared in sorted order.
func ErrorCausesMap(causes map[string]Cause) (Taxonomy, DispatcherFactory) {
	names := make([]string, 0, len(causes))
	for name := range causes {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, Define(name, causes[name]))
	}
	return ErrorCauses(defs...)
}

func (t Taxonomy) factory() DispatcherFactory {
	return func(handlers Handlers[any], opts ...Option) (Dispatch[any], error) {
		d, err := NewDispatcher(t, handlers, opts...)
		if err != nil {
			return nil, err
		}
		return d.Dispatch, nil
	}
}

// Get returns a copy of the definition registered under name.
func (t Taxonomy) Get(name string) (Cause, bool) {
	c, ok := t.defs[name]
	if !ok {
		return Cause{}, false
	}
	return c.clone(), true
}

// MustGet is Get for names known to be declared; it panics otherwise.
func (t Taxonomy) MustGet(name string) Cause {
	c, ok := t.Get(name)
	if !ok {
		panic(fmt.Errorf("errcause: cause %q is not declared", name))
	}
	return c
}

// Has reports whether name is declared.
func (t Taxonomy) Has(name string) bool {
	_, ok := t.defs[name]
	return ok
}

// Names returns the declared names in declaration order.
func (t Taxonomy) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of declared causes.
func (t Taxonomy) Len() int { return len(t.names) }

// Map returns a new map of name to definition.
func (t Taxonomy) Map() map[string]Cause {
	m := make(map[string]Cause, len(t.defs))
	for name, c := range t.defs {
		m[name] = c.clone()
	}
	return m
}

// Create builds an Error from the definition registered under name, with kv
// appended as extras. An undeclared name still yields an Error carrying just
// that name and the extras; dispatching it reports UnexpectedError.
func (t Taxonomy) Create(name string, kv ...any) Error {
	c, ok := t.defs[name]
	if !ok {
		c = Cause{Name: name}
	}
	return newCausedError(c.WithFields(kv...), 0)
}
