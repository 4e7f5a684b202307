// dispatch.go — exhaustive, cause-name based dispatch.
//
// Configuration: NewDispatcher checks the handler table against the taxonomy in
// declaration order and fails on the first declared name without a handler.
//
// Dispatch, per error:
//  1. locate the Cause (first Error in the unwrap chain)
//  2. require a name (strict mode)
//  3. call the handler registered for that name with the ORIGINAL error
//  4. otherwise report UnexpectedError chaining the original error
//
// A Dispatcher holds no mutable state and is safe for concurrent use.
package errcause

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler reacts to an error carrying a particular cause.
type Handler[R any] func(err error) R

// Handlers maps cause names to handlers. Keys not declared in the taxonomy are
// tolerated; a nil handler counts as missing.
type Handlers[R any] map[string]Handler[R]

// Dispatch routes err to its handler and returns the handler's result, or a
// MissingCause, MissingCauseName, UnexpectedError (or, for lazy dispatchers,
// MissingHandler) error.
type Dispatch[R any] func(err error) (R, error)

// DispatcherFactory configures an untyped dispatcher bound to a taxonomy, as
// returned by ErrorCauses. It fails with MissingHandler when handlers is
// incomplete.
type DispatcherFactory func(handlers Handlers[any], opts ...Option) (Dispatch[any], error)

// Noop is a handler for causes that are intentionally ignored.
func Noop(error) any { return nil }

// Ignore returns a handler producing R's zero value, the typed form of Noop.
func Ignore[R any]() Handler[R] {
	return func(error) R {
		var zero R
		return zero
	}
}

// Option configures a Dispatcher.
type Option func(*config)

type config struct {
	lazy     bool
	tolerant bool
	logger   *zap.Logger
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// Lazy skips the configuration-time completeness check. Dispatching a declared
// name that has no handler then fails with MissingHandler.
func Lazy() Option {
	return func(c *config) { c.lazy = true }
}

// Tolerant treats an error without a Cause as carrying an empty one, and a
// nameless Cause as named "". Both end in UnexpectedError ("unknown") unless a
// handler is registered under "".
func Tolerant() Option {
	return func(c *config) { c.tolerant = true }
}

// WithLogger sets the logger used for configuration failures and unroutable
// errors. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// Dispatcher routes errors to handlers by cause name.
type Dispatcher[R any] struct {
	tax      Taxonomy
	handlers map[string]Handler[R]
	cfg      config
}

// NewDispatcher validates handlers against tax and returns a dispatcher. The
// handler table is copied; later changes to handlers have no effect.
func NewDispatcher[R any](tax Taxonomy, handlers Handlers[R], opts ...Option) (*Dispatcher[R], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	table := make(map[string]Handler[R], len(handlers))
	for name, h := range handlers {
		if h != nil {
			table[name] = h
		}
	}

	if !cfg.lazy {
		for _, name := range tax.names {
			if _, ok := table[name]; ok {
				continue
			}
			err := missingHandler(name)
			cfg.logger.Error("missing error handler",
				zap.String("cause_name", name),
				zap.Strings("declared", tax.Names()),
			)
			return nil, err
		}
	}

	return &Dispatcher[R]{tax: tax, handlers: table, cfg: cfg}, nil
}

// MustNewDispatcher is NewDispatcher for package-level setup; it panics on an
// incomplete handler table.
func MustNewDispatcher[R any](tax Taxonomy, handlers Handlers[R], opts ...Option) *Dispatcher[R] {
	d, err := NewDispatcher(tax, handlers, opts...)
	if err != nil {
		panic(fmt.Errorf("errcause: %w", err))
	}
	return d
}

// Taxonomy returns the taxonomy d was checked against.
func (d *Dispatcher[R]) Taxonomy() Taxonomy { return d.tax }

// Handles reports whether a handler is registered for name.
func (d *Dispatcher[R]) Handles(name string) bool {
	_, ok := d.handlers[name]
	return ok
}

// Dispatch calls the handler registered for err's cause name with err itself
// and returns its result verbatim. Unroutable errors are never swallowed.
func (d *Dispatcher[R]) Dispatch(err error) (R, error) {
	var zero R

	c, ok := CauseOf(err)
	if !ok && !d.cfg.tolerant {
		return zero, d.reject(missingCause(err), "", err)
	}
	if ok && c.Name == "" && !d.cfg.tolerant {
		return zero, d.reject(missingCauseName(err), "", err)
	}

	if h, found := d.handlers[c.Name]; found {
		return h(err), nil
	}

	if d.cfg.lazy && d.tax.Has(c.Name) {
		return zero, d.reject(missingHandler(c.Name), c.Name, err)
	}
	return zero, d.reject(unexpected(c.Name, err), c.Name, err)
}

// reject logs an unroutable error and returns failure unchanged.
func (d *Dispatcher[R]) reject(failure Error, name string, err error) Error {
	ce := d.cfg.logger.Check(zapcore.WarnLevel, "no handler found for error")
	if ce == nil {
		return failure
	}
	fields := []zap.Field{
		zap.String("failure", failure.Name()),
		zap.String("cause_name", name),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if c, ok := CauseOf(err); ok {
		fields = append(fields, zap.Object("cause", c))
	}
	if names := ChainNames(err); len(names) > 0 {
		fields = append(fields, zap.Strings("cause_chain", names))
	}
	ce.Write(fields...)
	return failure
}
