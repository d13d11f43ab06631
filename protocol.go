package fallible

import "errors"

// ============================================================================
// Failure Classification
// ============================================================================

// Outcome is the result category of a single invocation.
type Outcome int

const (
	// OutcomeSuccess means the operation returned a nil error.
	OutcomeSuccess Outcome = iota
	// OutcomeRecoverable means the error is subject to the combinator in effect.
	OutcomeRecoverable
	// OutcomeFatal means the error propagates untouched through every combinator.
	OutcomeFatal
)

// String returns the lower-case name of o.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRecoverable:
		return "recoverable"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

type fataler interface {
	Fatal() bool
}

// Classify reports how the combinators treat err.
// Panics raised by an operation are never classified: they are not recovered.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	if IsFatal(err) {
		return OutcomeFatal
	}
	return OutcomeRecoverable
}

// IsFatal reports whether err, or an error it wraps, declares itself fatal
// through a Fatal() bool method.
func IsFatal(err error) bool {
	var f fataler
	return errors.As(err, &f) && f.Fatal()
}

// Fatal marks err so that no combinator intercepts it. It returns nil for a
// nil err and err itself when it is already fatal.
//
// Example:
//
//	load := Func[string, []byte](func(path string) ([]byte, error) {
//	    if path == "" {
//	        return nil, Fatal(errors.New("empty path"))
//	    }
//	    return os.ReadFile(path)
//	})
func Fatal(err error) error {
	if err == nil || IsFatal(err) {
		return err
	}
	return &fatalError{err: err}
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }
func (e *fatalError) Fatal() bool   { return true }

// ============================================================================
// Combinator Protocol
// ============================================================================

// settle finishes an invocation that must not return an error.
// Success passes r through, a fatal err is re-panicked as the same value and
// a recoverable err is handed to onFailure.
func settle[R any](r R, err error, onFailure func(error) R) R {
	switch Classify(err) {
	case OutcomeSuccess:
		return r
	case OutcomeFatal:
		panic(err)
	}
	return onFailure(err)
}

// retry finishes an invocation that keeps its error result. Only a
// recoverable err triggers next.
func retry[R any](r R, err error, next func(error) (R, error)) (R, error) {
	if Classify(err) != OutcomeRecoverable {
		return r, err
	}
	return next(err)
}

func raiser[R any](err error) R {
	panic(&RaisedError{Cause: err})
}

func thrower[R any](t FailureType) func(error) R {
	return func(err error) R {
		panic(t.construct(err))
	}
}

func converter[R any](t FailureType) func(error) (R, error) {
	return func(err error) (R, error) {
		var zero R
		return zero, t.construct(err)
	}
}

func always[R any](v R) func(error) R {
	return func(error) R { return v }
}

// unit stands in for the result of shapes that return only an error.
type unit struct{}

func lift(err error) (unit, error) { return unit{}, err }
