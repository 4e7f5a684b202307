package errcause

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func fetchTaxonomy() (Taxonomy, DispatcherFactory) {
	return ErrorCauses(
		Define("NotFound", Cause{Code: 404, Message: "The requested resource was not found"}),
		Define("MissingURI", Cause{Code: 400, Message: "URI is required"}),
	)
}

func TestDispatcherFactory_MissingHandler(t *testing.T) {
	t.Parallel()

	_, handleFetchErrors := fetchTaxonomy()

	dispatch, err := handleFetchErrors(Handlers[any]{"NotFound": Noop})
	require.Error(t, err)
	assert.Nil(t, dispatch)
	assert.ErrorIs(t, err, ErrMissingHandler)

	c, ok := CauseOf(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"name":    "MissingHandler",
		"message": "Missing error handler: MissingURI",
	}, c.Fields())
}

func TestNewDispatcher_FailsOnFirstMissingInDeclarationOrder(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}), Define("B", Cause{}), Define("C", Cause{}))

	_, err := NewDispatcher(tax, Handlers[int]{"A": func(error) int { return 1 }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing error handler: B")
}

func TestNewDispatcher_NilHandlerCountsAsMissing(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	_, err := NewDispatcher(tax, Handlers[any]{"A": nil})
	assert.ErrorIs(t, err, ErrMissingHandler)
}

func TestNewDispatcher_ExtraHandlersTolerated(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	d, err := NewDispatcher(tax, Handlers[string]{
		"A":     func(error) string { return "a" },
		"Extra": func(error) string { return "extra" },
	})
	require.NoError(t, err)
	assert.True(t, d.Handles("Extra"))

	got, err := d.Dispatch(New("Extra", ""))
	require.NoError(t, err)
	assert.Equal(t, "extra", got)
}

func TestNewDispatcher_CopiesHandlerTable(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	handlers := Handlers[string]{"A": func(error) string { return "original" }}
	d, err := NewDispatcher(tax, handlers)
	require.NoError(t, err)

	handlers["A"] = func(error) string { return "replaced" }
	got, err := d.Dispatch(New("A", ""))
	require.NoError(t, err)
	assert.Equal(t, "original", got)
	assert.Equal(t, tax.Names(), d.Taxonomy().Names())
}

func TestDispatch_InvokesHandlerOnceWithOriginalError(t *testing.T) {
	t.Parallel()

	tax, handle := fetchTaxonomy()
	original := CreateError(tax.MustGet("NotFound"))

	var calls int
	var seen error
	dispatch, err := handle(Handlers[any]{
		"NotFound": func(err error) any {
			calls++
			seen = err
			return err.(Error).Cause()
		},
		"MissingURI": Noop,
	})
	require.NoError(t, err)

	got, err := dispatch(original)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Same(t, original, seen)
	assert.Equal(t, tax.MustGet("NotFound"), got)
}

func TestDispatch_ResultReturnedVerbatim(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("handler result is an error value")
	tax := NewTaxonomy(Define("A", Cause{}))
	d := MustNewDispatcher(tax, Handlers[error]{"A": func(error) error { return sentinel }})

	got, err := d.Dispatch(New("A", ""))
	require.NoError(t, err)
	assert.Same(t, sentinel, got)
}

func TestDispatch_SeesThroughWrapping(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	d := MustNewDispatcher(tax, Handlers[error]{"A": func(err error) error { return err }})

	wrapped := fmt.Errorf("request failed: %w", New("A", "a"))
	got, err := d.Dispatch(wrapped)
	require.NoError(t, err)
	assert.Same(t, wrapped, got, "handler receives the error as dispatched")
}

func TestDispatch_UnexpectedName(t *testing.T) {
	t.Parallel()

	_, handle := fetchTaxonomy()
	dispatch, err := handle(Handlers[any]{"NotFound": Noop, "MissingURI": Noop})
	require.NoError(t, err)

	bogus := New("Bogus", "no such cause")
	res, err := dispatch(bogus)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, bogus, "original error is chained")
	assert.Contains(t, err.Error(), "Bogus")
	assert.Equal(t, "An unexpected error was thrown: Bogus", err.(Error).Message())
}

func TestDispatch_StrictMissingCause(t *testing.T) {
	t.Parallel()

	_, handle := fetchTaxonomy()
	dispatch, err := handle(Handlers[any]{"NotFound": Noop, "MissingURI": Noop})
	require.NoError(t, err)

	plain := errors.New("This Error Does Not Exist.com")
	_, err = dispatch(plain)
	assert.ErrorIs(t, err, ErrMissingCause)
	assert.ErrorIs(t, err, plain)

	_, err = dispatch(nil)
	assert.ErrorIs(t, err, ErrMissingCause)
}

func TestDispatch_StrictMissingCauseName(t *testing.T) {
	t.Parallel()

	_, handle := fetchTaxonomy()
	dispatch, err := handle(Handlers[any]{"NotFound": Noop, "MissingURI": Noop})
	require.NoError(t, err)

	nameless := CreateError(Cause{Message: "who am I"})
	_, err = dispatch(nameless)
	assert.ErrorIs(t, err, ErrMissingCauseName)
	assert.ErrorIs(t, err, nameless)
}

func TestDispatch_TolerantFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	_, handle := fetchTaxonomy()
	dispatch, err := handle(Handlers[any]{"NotFound": Noop, "MissingURI": Noop}, Tolerant())
	require.NoError(t, err)

	for _, in := range []error{errors.New("plain"), CreateError(Cause{Message: "nameless"})} {
		_, err := dispatch(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpected)
		assert.Contains(t, err.Error(), "unknown")
		assert.Contains(t, fmt.Sprintf("%v", err), "UnexpectedError")
	}
}

func TestDispatch_TolerantEmptyNameHandler(t *testing.T) {
	t.Parallel()

	d, err := NewDispatcher(NewTaxonomy(), Handlers[string]{"": func(error) string { return "fallback" }}, Tolerant())
	require.NoError(t, err)

	got, err := d.Dispatch(errors.New("plain"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestDispatch_LazyDefersMissingHandler(t *testing.T) {
	t.Parallel()

	_, handle := fetchTaxonomy()
	dispatch, err := handle(Handlers[any]{"NotFound": Noop}, Lazy())
	require.NoError(t, err, "lazy dispatchers skip the configuration check")

	_, err = dispatch(New("MissingURI", ""))
	assert.ErrorIs(t, err, ErrMissingHandler)
	assert.Contains(t, err.Error(), "MissingURI")

	_, err = dispatch(New("Bogus", ""))
	assert.ErrorIs(t, err, ErrUnexpected)
}

func TestDispatch_FailureTraceStartsInDispatch(t *testing.T) {
	t.Parallel()

	d := MustNewDispatcher(NewTaxonomy(), Handlers[any]{})
	_, err := d.Dispatch(New("Bogus", ""))
	require.Error(t, err)

	frames := err.(Error).Frames()
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].Function, "Dispatch")
}

func TestMustNewDispatcher_Panics(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	assert.PanicsWithError(t, "errcause: MissingHandler: Missing error handler: A", func() {
		MustNewDispatcher(tax, Handlers[any]{})
	})
}

func TestNoopAndIgnore(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Noop(nil))
	assert.Equal(t, 0, Ignore[int]()(errors.New("x")))
	assert.Equal(t, "", Ignore[string]()(nil))
}

func TestDispatch_LogsUnroutableErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	tax := NewTaxonomy(Define("A", Cause{}))
	d, err := NewDispatcher(tax, Handlers[any]{"A": Noop}, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = d.Dispatch(Wrap(New("Inner", ""), Cause{Name: "Bogus", Code: 500}))
	require.Error(t, err)

	entries := logs.FilterMessage("no handler found for error").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, NameUnexpectedError, ctx["failure"])
	assert.Equal(t, "Bogus", ctx["cause_name"])
	assert.Equal(t, []any{"Bogus", "Inner"}, ctx["cause_chain"])
	assert.Contains(t, ctx, "cause")
	assert.Contains(t, ctx, "error")

	_, err = d.Dispatch(New("A", ""))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len(), "routed errors are not logged")
}

func TestDispatch_LoggingUnhashableChainReturnsUnexpected(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	d, err := NewDispatcher(NewTaxonomy(), Handlers[any]{}, WithLogger(zap.New(core)))
	require.NoError(t, err)

	orig := holderErr{inner: valueJoin{errs: []error{New("A", "")}}}
	var derr error
	require.NotPanics(t, func() { _, derr = d.Dispatch(orig) })
	require.ErrorIs(t, derr, ErrUnexpected)
	assert.Equal(t, "UnexpectedError: An unexpected error was thrown: A", derr.Error())

	entries := logs.FilterMessage("no handler found for error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"A"}, entries[0].ContextMap()["cause_chain"])
}

func TestNewDispatcher_LogsMissingHandler(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	tax := NewTaxonomy(Define("A", Cause{}), Define("B", Cause{}))
	_, err := NewDispatcher(tax, Handlers[any]{"A": Noop}, WithLogger(zap.New(core)))
	require.Error(t, err)

	entries := logs.FilterMessage("missing error handler").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "B", entries[0].ContextMap()["cause_name"])
}

func TestWithLogger_NilAndTestLogger(t *testing.T) {
	t.Parallel()

	tax := NewTaxonomy(Define("A", Cause{}))
	for _, l := range []*zap.Logger{nil, zaptest.NewLogger(t)} {
		d, err := NewDispatcher(tax, Handlers[any]{"A": Noop}, WithLogger(l))
		require.NoError(t, err)
		_, err = d.Dispatch(errors.New("plain"))
		assert.ErrorIs(t, err, ErrMissingCause)
	}
}
