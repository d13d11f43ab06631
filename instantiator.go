package fallible

import (
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// ============================================================================
// Failure Types
// ============================================================================

// FailureType describes the type of failure OrThrow and As build around a
// recoverable failure.
//
// A failure type is buildable when a factory was registered for it with
// Register or WithFactory, or when it is a struct (or pointer to struct) with
// an exported field of type error that is tagged `fallible:"cause"` or named
// Cause or Err.
//
// Example:
//
//	type ParseError struct {
//	    Cause error
//	}
//
//	func (e *ParseError) Error() string { return "parse: " + e.Cause.Error() }
//
//	atoi := Func[string, int](strconv.Atoi).OrThrow(TypeOf[*ParseError]())
type FailureType struct {
	typ  reflect.Type
	inst *Instantiator
}

// TypeOf returns the FailureType of E, built by the Default instantiator.
func TypeOf[E error]() FailureType {
	return FailureType{typ: reflect.TypeFor[E]()}
}

// On returns a copy of t that is built by inst instead of Default.
func (t FailureType) On(inst *Instantiator) FailureType {
	t.inst = inst
	return t
}

func (t FailureType) String() string {
	if t.typ == nil {
		return "<nil>"
	}
	return t.typ.String()
}

func (t FailureType) construct(cause error) error {
	inst := t.inst
	if inst == nil {
		inst = Default()
	}
	return inst.Construct(t, cause)
}

// ============================================================================
// Instantiator
// ============================================================================

type strategy struct {
	typ    reflect.Type
	origin string
	build  func(cause error) (error, error)
}

// Instantiator builds failures of a requested type around a cause.
// The construction strategy of every type is resolved once and then cached
// for the lifetime of the Instantiator. It is safe for concurrent use.
type Instantiator struct {
	logger *slog.Logger

	mu         sync.RWMutex
	factories   map[reflect.Type]strategy
	strategies  map[reflect.Type]strategy
	generations map[reflect.Type]uint64
	flight      singleflight.Group

	resolutions          atomic.Int64
	resolutionFailures   atomic.Int64
	cacheHits            atomic.Int64
	constructions        atomic.Int64
	constructionFailures atomic.Int64
}

// Option configures an Instantiator.
type Option func(*Instantiator)

// WithLogger sets the logger resolution and construction events are written
// to. Without it, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instantiator) {
		i.logger = logger
	}
}

// WithFactory registers fn as the constructor of E.
func WithFactory[E error](fn func(cause error) (E, error)) Option {
	return func(i *Instantiator) {
		Register(i, fn)
	}
}

// NewInstantiator creates an Instantiator with an empty cache.
func NewInstantiator(opts ...Option) *Instantiator {
	i := &Instantiator{
		factories:   make(map[reflect.Type]strategy),
		strategies:  make(map[reflect.Type]strategy),
		generations: make(map[reflect.Type]uint64),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var defaultInstantiator = sync.OnceValue(func() *Instantiator {
	return NewInstantiator()
})

// Default returns the process-wide Instantiator, creating it on first use.
func Default() *Instantiator {
	return defaultInstantiator()
}

// Register makes fn the constructor of E for inst. A strategy already cached
// for E, or one being resolved concurrently, is dropped so the next
// construction uses fn.
//
// A non-nil error returned by fn is reported as a *ConstructionError, unless
// it is fatal, in which case it is returned as is.
func Register[E error](inst *Instantiator, fn func(cause error) (E, error)) {
	typ := reflect.TypeFor[E]()
	s := strategy{
		typ:    typ,
		origin: "factory",
		build: func(cause error) (error, error) {
			failure, err := fn(cause)
			if err != nil {
				return nil, err
			}
			return failure, nil
		},
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.factories[typ] = s
	inst.generations[typ]++
	delete(inst.strategies, typ)
}

// Construct builds a failure of type t whose cause is cause.
//
// The returned error is never nil. It is the built failure, a
// *ConfigurationError when t has no usable constructor, or a
// *ConstructionError when the constructor itself failed. Resolution failures
// are not cached: the next call tries again.
func (i *Instantiator) Construct(t FailureType, cause error) error {
	s, err := i.strategy(t)
	if err != nil {
		return err
	}

	failure, err := s.build(cause)
	switch {
	case err != nil && IsFatal(err):
		return err
	case err != nil:
		return i.constructionFailed(t, err, cause)
	case isNil(failure):
		return i.constructionFailed(t, ErrNilFailure, cause)
	}

	i.constructions.Add(1)
	return failure
}

// Stats is a snapshot of an Instantiator's counters.
type Stats struct {
	Resolutions          int64
	ResolutionFailures   int64
	CacheHits            int64
	Constructions        int64
	ConstructionFailures int64
}

// Stats returns the current counters.
func (i *Instantiator) Stats() Stats {
	return Stats{
		Resolutions:          i.resolutions.Load(),
		ResolutionFailures:   i.resolutionFailures.Load(),
		CacheHits:            i.cacheHits.Load(),
		Constructions:        i.constructions.Load(),
		ConstructionFailures: i.constructionFailures.Load(),
	}
}

func (i *Instantiator) log() *slog.Logger {
	if i.logger != nil {
		return i.logger
	}
	return slog.Default()
}

func (i *Instantiator) cached(typ reflect.Type) (strategy, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	s, ok := i.strategies[typ]
	return s, ok
}

func (i *Instantiator) strategy(t FailureType) (strategy, error) {
	if t.typ == nil {
		return strategy{}, &ConfigurationError{Type: t.String(), Err: ErrNoFailureType}
	}

	if s, ok := i.cached(t.typ); ok {
		i.cacheHits.Add(1)
		return s, nil
	}

	v, err, _ := i.flight.Do(typeKey(t.typ), func() (any, error) {
		if s, ok := i.cached(t.typ); ok {
			return s, nil
		}
		return i.resolveAndStore(t.typ)
	})

	s := v.(strategy)
	if s.typ != t.typ {
		// two distinct types with the same qualified name shared a flight key
		return i.resolveAndStore(t.typ)
	}
	if err != nil {
		return strategy{}, err
	}
	return s, nil
}

// resolveAndStore resolves typ and caches the result. A Register for typ that
// lands while resolving invalidates the result and resolution starts over.
// The returned strategy always carries typ, even alongside an error.
func (i *Instantiator) resolveAndStore(typ reflect.Type) (strategy, error) {
	for {
		i.mu.RLock()
		generation := i.generations[typ]
		i.mu.RUnlock()

		s, err := i.resolve(typ)

		i.mu.Lock()
		if i.generations[typ] != generation {
			i.mu.Unlock()
			continue
		}
		if err == nil {
			i.strategies[typ] = s
		}
		i.mu.Unlock()

		if err != nil {
			return strategy{typ: typ}, err
		}
		return s, nil
	}
}

func (i *Instantiator) resolve(typ reflect.Type) (strategy, error) {
	i.resolutions.Add(1)

	i.mu.RLock()
	s, ok := i.factories[typ]
	i.mu.RUnlock()

	if !ok {
		var err error
		s, err = fieldStrategy(typ)
		if err != nil {
			i.resolutionFailures.Add(1)
			i.log().Error("failure type resolution failed",
				slog.String("type", typ.String()),
				slog.Any("error", err))
			return strategy{}, &ConfigurationError{Type: typ.String(), Err: err}
		}
	}

	i.log().Debug("failure type resolved",
		slog.String("type", typ.String()),
		slog.String("strategy", s.origin))
	return s, nil
}

func (i *Instantiator) constructionFailed(t FailureType, err, cause error) error {
	i.constructionFailures.Add(1)
	i.log().Warn("failure construction failed",
		slog.String("type", t.String()),
		slog.Any("error", err),
		slog.Any("cause", cause))
	return &ConstructionError{
		Type:       t.String(),
		Cause:      err,
		suppressed: []error{cause},
	}
}

// ============================================================================
// Structural Resolution
// ============================================================================

var errorType = reflect.TypeFor[error]()

func fieldStrategy(typ reflect.Type) (strategy, error) {
	st, isPtr := typ, false
	if st.Kind() == reflect.Pointer {
		st, isPtr = st.Elem(), true
	}
	if st.Kind() != reflect.Struct {
		return strategy{}, ErrNoConstructor
	}

	field, ok := causeField(st)
	if !ok {
		return strategy{}, ErrNoConstructor
	}
	if !field.IsExported() {
		return strategy{}, ErrInaccessibleConstructor
	}

	index := field.Index
	return strategy{
		typ:    typ,
		origin: "field",
		build: func(cause error) (error, error) {
			v := reflect.New(st)
			if cause != nil {
				v.Elem().FieldByIndex(index).Set(reflect.ValueOf(cause))
			}
			if !isPtr {
				v = v.Elem()
			}
			failure, ok := v.Interface().(error)
			if !ok {
				return nil, ErrNoConstructor
			}
			return failure, nil
		},
	}, nil
}

// causeField finds the field a cause is stored in: a tagged field first,
// then one named Cause, then one named Err. Lower-case names are matched so
// that they can be reported as inaccessible.
func causeField(st reflect.Type) (reflect.StructField, bool) {
	for i := 0; i < st.NumField(); i++ {
		if f := st.Field(i); f.Type == errorType && f.Tag.Get("fallible") == "cause" {
			return f, true
		}
	}
	for _, name := range []string{"Cause", "Err", "cause", "err"} {
		for i := 0; i < st.NumField(); i++ {
			if f := st.Field(i); f.Type == errorType && f.Name == name {
				return f, true
			}
		}
	}
	return reflect.StructField{}, false
}

func typeKey(typ reflect.Type) string {
	elem := typ
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	return elem.PkgPath() + ":" + typ.String()
}

func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
