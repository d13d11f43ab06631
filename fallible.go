package fallible

// ============================================================================
// Functions
// ============================================================================

// Func is a fallible func(T) R.
//
// Example:
//
//	read := Func[string, []byte](os.ReadFile).
//	    OrTryWith(readFromCache).
//	    FallbackTo(func(string) []byte { return nil })
type Func[T, R any] func(T) (R, error)

// Apply calls f.
func (f Func[T, R]) Apply(v T) (R, error) {
	return f(v)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f Func[T, R]) Unchecked() func(T) R {
	return func(v T) R {
		r, err := f(v)
		return settle(r, err, raiser[R])
	}
}

// OrTryWith calls other with the same input when f fails recoverably.
func (f Func[T, R]) OrTryWith(other Func[T, R]) Func[T, R] {
	return func(v T) (R, error) {
		r, err := f(v)
		return retry(r, err, func(error) (R, error) { return other(v) })
	}
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f Func[T, R]) OrThrow(t FailureType) func(T) R {
	return func(v T) R {
		r, err := f(v)
		return settle(r, err, thrower[R](t))
	}
}

// As converts recoverable failures to failures of type t.
func (f Func[T, R]) As(t FailureType) Func[T, R] {
	return func(v T) (R, error) {
		r, err := f(v)
		return retry(r, err, converter[R](t))
	}
}

// FallbackTo calls fallback with the same input when f fails recoverably.
func (f Func[T, R]) FallbackTo(fallback func(T) R) func(T) R {
	return func(v T) R {
		r, err := f(v)
		return settle(r, err, func(error) R { return fallback(v) })
	}
}

// OrReturn returns defaultValue when f fails recoverably.
func (f Func[T, R]) OrReturn(defaultValue R) func(T) R {
	return func(v T) R {
		r, err := f(v)
		return settle(r, err, always(defaultValue))
	}
}

// BiFunc is a fallible func(T, U) R.
type BiFunc[T, U, R any] func(T, U) (R, error)

// Apply calls f.
func (f BiFunc[T, U, R]) Apply(t T, u U) (R, error) {
	return f(t, u)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f BiFunc[T, U, R]) Unchecked() func(T, U) R {
	return func(t T, u U) R {
		r, err := f(t, u)
		return settle(r, err, raiser[R])
	}
}

// OrTryWith calls other with the same inputs when f fails recoverably.
func (f BiFunc[T, U, R]) OrTryWith(other BiFunc[T, U, R]) BiFunc[T, U, R] {
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return retry(r, err, func(error) (R, error) { return other(t, u) })
	}
}

// OrThrow returns a func that panics with a failure of type ft on recoverable failure.
func (f BiFunc[T, U, R]) OrThrow(ft FailureType) func(T, U) R {
	return func(t T, u U) R {
		r, err := f(t, u)
		return settle(r, err, thrower[R](ft))
	}
}

// As converts recoverable failures to failures of type ft.
func (f BiFunc[T, U, R]) As(ft FailureType) BiFunc[T, U, R] {
	return func(t T, u U) (R, error) {
		r, err := f(t, u)
		return retry(r, err, converter[R](ft))
	}
}

// FallbackTo calls fallback with the same inputs when f fails recoverably.
func (f BiFunc[T, U, R]) FallbackTo(fallback func(T, U) R) func(T, U) R {
	return func(t T, u U) R {
		r, err := f(t, u)
		return settle(r, err, func(error) R { return fallback(t, u) })
	}
}

// OrReturn returns defaultValue when f fails recoverably.
func (f BiFunc[T, U, R]) OrReturn(defaultValue R) func(T, U) R {
	return func(t T, u U) R {
		r, err := f(t, u)
		return settle(r, err, always(defaultValue))
	}
}

// ============================================================================
// Operators
// ============================================================================

// UnaryOperator is a fallible func(T) T.
type UnaryOperator[T any] func(T) (T, error)

// Apply calls f.
func (f UnaryOperator[T]) Apply(v T) (T, error) {
	return f(v)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f UnaryOperator[T]) Unchecked() func(T) T {
	return Func[T, T](f).Unchecked()
}

// OrTryWith calls other with the same operand when f fails recoverably.
func (f UnaryOperator[T]) OrTryWith(other UnaryOperator[T]) UnaryOperator[T] {
	return UnaryOperator[T](Func[T, T](f).OrTryWith(Func[T, T](other)))
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f UnaryOperator[T]) OrThrow(t FailureType) func(T) T {
	return Func[T, T](f).OrThrow(t)
}

// As converts recoverable failures to failures of type t.
func (f UnaryOperator[T]) As(t FailureType) UnaryOperator[T] {
	return UnaryOperator[T](Func[T, T](f).As(t))
}

// FallbackTo calls fallback with the same operand when f fails recoverably.
func (f UnaryOperator[T]) FallbackTo(fallback func(T) T) func(T) T {
	return Func[T, T](f).FallbackTo(fallback)
}

// OrReturn returns defaultValue when f fails recoverably.
func (f UnaryOperator[T]) OrReturn(defaultValue T) func(T) T {
	return Func[T, T](f).OrReturn(defaultValue)
}

// OrReturnSelf returns the operand unchanged when f fails recoverably.
func (f UnaryOperator[T]) OrReturnSelf() func(T) T {
	return func(v T) T {
		r, err := f(v)
		return settle(r, err, always(v))
	}
}

// BinaryOperator is a fallible func(T, T) T.
//
// Example:
//
//	div := BinaryOperator[int](func(a, b int) (int, error) {
//	    if b == 0 {
//	        return 0, errors.New("division by zero")
//	    }
//	    return a / b, nil
//	}).OrReturnLeft()
//
//	div(10, 0) // 10
type BinaryOperator[T any] func(T, T) (T, error)

// Apply calls f.
func (f BinaryOperator[T]) Apply(left, right T) (T, error) {
	return f(left, right)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f BinaryOperator[T]) Unchecked() func(T, T) T {
	return BiFunc[T, T, T](f).Unchecked()
}

// OrTryWith calls other with the same operands when f fails recoverably.
func (f BinaryOperator[T]) OrTryWith(other BinaryOperator[T]) BinaryOperator[T] {
	return BinaryOperator[T](BiFunc[T, T, T](f).OrTryWith(BiFunc[T, T, T](other)))
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f BinaryOperator[T]) OrThrow(t FailureType) func(T, T) T {
	return BiFunc[T, T, T](f).OrThrow(t)
}

// As converts recoverable failures to failures of type t.
func (f BinaryOperator[T]) As(t FailureType) BinaryOperator[T] {
	return BinaryOperator[T](BiFunc[T, T, T](f).As(t))
}

// FallbackTo calls fallback with the same operands when f fails recoverably.
func (f BinaryOperator[T]) FallbackTo(fallback func(T, T) T) func(T, T) T {
	return BiFunc[T, T, T](f).FallbackTo(fallback)
}

// OrReturn returns defaultValue when f fails recoverably.
func (f BinaryOperator[T]) OrReturn(defaultValue T) func(T, T) T {
	return BiFunc[T, T, T](f).OrReturn(defaultValue)
}

// OrReturnLeft returns the left operand when f fails recoverably.
func (f BinaryOperator[T]) OrReturnLeft() func(T, T) T {
	return func(left, right T) T {
		r, err := f(left, right)
		return settle(r, err, always(left))
	}
}

// OrReturnRight returns the right operand when f fails recoverably.
func (f BinaryOperator[T]) OrReturnRight() func(T, T) T {
	return func(left, right T) T {
		r, err := f(left, right)
		return settle(r, err, always(right))
	}
}

// ============================================================================
// Suppliers
// ============================================================================

// Supplier is a fallible func() R.
//
// Example:
//
//	hostname := Supplier[string](os.Hostname).OrReturn("localhost")
type Supplier[R any] func() (R, error)

// Get calls f.
func (f Supplier[R]) Get() (R, error) {
	return f()
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f Supplier[R]) Unchecked() func() R {
	return func() R {
		r, err := f()
		return settle(r, err, raiser[R])
	}
}

// OrTryWith calls other when f fails recoverably.
func (f Supplier[R]) OrTryWith(other Supplier[R]) Supplier[R] {
	return func() (R, error) {
		r, err := f()
		return retry(r, err, func(error) (R, error) { return other() })
	}
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f Supplier[R]) OrThrow(t FailureType) func() R {
	return func() R {
		r, err := f()
		return settle(r, err, thrower[R](t))
	}
}

// As converts recoverable failures to failures of type t.
func (f Supplier[R]) As(t FailureType) Supplier[R] {
	return func() (R, error) {
		r, err := f()
		return retry(r, err, converter[R](t))
	}
}

// FallbackTo calls fallback when f fails recoverably.
func (f Supplier[R]) FallbackTo(fallback func() R) func() R {
	return func() R {
		r, err := f()
		return settle(r, err, func(error) R { return fallback() })
	}
}

// OrReturn returns defaultValue when f fails recoverably.
func (f Supplier[R]) OrReturn(defaultValue R) func() R {
	return func() R {
		r, err := f()
		return settle(r, err, always(defaultValue))
	}
}

// ============================================================================
// Predicates
// ============================================================================

// Predicate is a fallible func(T) bool.
type Predicate[T any] func(T) (bool, error)

// Test calls f.
func (f Predicate[T]) Test(v T) (bool, error) {
	return f(v)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f Predicate[T]) Unchecked() func(T) bool {
	return Func[T, bool](f).Unchecked()
}

// OrTryWith calls other with the same input when f fails recoverably.
func (f Predicate[T]) OrTryWith(other Predicate[T]) Predicate[T] {
	return Predicate[T](Func[T, bool](f).OrTryWith(Func[T, bool](other)))
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f Predicate[T]) OrThrow(t FailureType) func(T) bool {
	return Func[T, bool](f).OrThrow(t)
}

// As converts recoverable failures to failures of type t.
func (f Predicate[T]) As(t FailureType) Predicate[T] {
	return Predicate[T](Func[T, bool](f).As(t))
}

// FallbackTo calls fallback with the same input when f fails recoverably.
func (f Predicate[T]) FallbackTo(fallback func(T) bool) func(T) bool {
	return Func[T, bool](f).FallbackTo(fallback)
}

// OrReturn returns a func that yields defaultValue on recoverable failure.
func (f Predicate[T]) OrReturn(defaultValue bool) func(T) bool {
	return Func[T, bool](f).OrReturn(defaultValue)
}

// OrReturnTrue is OrReturn(true).
func (f Predicate[T]) OrReturnTrue() func(T) bool { return f.OrReturn(true) }

// OrReturnFalse is OrReturn(false).
func (f Predicate[T]) OrReturnFalse() func(T) bool { return f.OrReturn(false) }

// BiPredicate is a fallible func(T, U) bool.
type BiPredicate[T, U any] func(T, U) (bool, error)

// Test calls f.
func (f BiPredicate[T, U]) Test(t T, u U) (bool, error) {
	return f(t, u)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f BiPredicate[T, U]) Unchecked() func(T, U) bool {
	return BiFunc[T, U, bool](f).Unchecked()
}

// OrTryWith calls other with the same inputs when f fails recoverably.
func (f BiPredicate[T, U]) OrTryWith(other BiPredicate[T, U]) BiPredicate[T, U] {
	return BiPredicate[T, U](BiFunc[T, U, bool](f).OrTryWith(BiFunc[T, U, bool](other)))
}

// OrThrow returns a func that panics with a failure of type ft on recoverable failure.
func (f BiPredicate[T, U]) OrThrow(ft FailureType) func(T, U) bool {
	return BiFunc[T, U, bool](f).OrThrow(ft)
}

// As converts recoverable failures to failures of type ft.
func (f BiPredicate[T, U]) As(ft FailureType) BiPredicate[T, U] {
	return BiPredicate[T, U](BiFunc[T, U, bool](f).As(ft))
}

// FallbackTo calls fallback with the same inputs when f fails recoverably.
func (f BiPredicate[T, U]) FallbackTo(fallback func(T, U) bool) func(T, U) bool {
	return BiFunc[T, U, bool](f).FallbackTo(fallback)
}

// OrReturn returns a func that yields defaultValue on recoverable failure.
func (f BiPredicate[T, U]) OrReturn(defaultValue bool) func(T, U) bool {
	return BiFunc[T, U, bool](f).OrReturn(defaultValue)
}

// OrReturnTrue is OrReturn(true).
func (f BiPredicate[T, U]) OrReturnTrue() func(T, U) bool { return f.OrReturn(true) }

// OrReturnFalse is OrReturn(false).
func (f BiPredicate[T, U]) OrReturnFalse() func(T, U) bool { return f.OrReturn(false) }

// ============================================================================
// Consumers
// ============================================================================

// Consumer is a fallible func(T).
//
// Example:
//
//	remove := Consumer[string](os.Remove).OrDoNothing()
//	remove("/tmp/maybe-there")
type Consumer[T any] func(T) error

// Accept calls f.
func (f Consumer[T]) Accept(v T) error {
	return f(v)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f Consumer[T]) Unchecked() func(T) {
	return func(v T) {
		settle(unit{}, f(v), raiser[unit])
	}
}

// OrTryWith calls other with the same input when f fails recoverably.
func (f Consumer[T]) OrTryWith(other Consumer[T]) Consumer[T] {
	return func(v T) error {
		_, err := retry(unit{}, f(v), func(error) (unit, error) { return lift(other(v)) })
		return err
	}
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f Consumer[T]) OrThrow(t FailureType) func(T) {
	return func(v T) {
		settle(unit{}, f(v), thrower[unit](t))
	}
}

// As converts recoverable failures to failures of type t.
func (f Consumer[T]) As(t FailureType) Consumer[T] {
	return func(v T) error {
		_, err := retry(unit{}, f(v), converter[unit](t))
		return err
	}
}

// FallbackTo calls fallback with the same input when f fails recoverably.
func (f Consumer[T]) FallbackTo(fallback func(T)) func(T) {
	return func(v T) {
		settle(unit{}, f(v), func(error) unit {
			fallback(v)
			return unit{}
		})
	}
}

// OrDoNothing discards recoverable failures.
func (f Consumer[T]) OrDoNothing() func(T) {
	return func(v T) {
		settle(unit{}, f(v), always(unit{}))
	}
}

// BiConsumer is a fallible func(T, U).
type BiConsumer[T, U any] func(T, U) error

// Accept calls f.
func (f BiConsumer[T, U]) Accept(t T, u U) error {
	return f(t, u)
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f BiConsumer[T, U]) Unchecked() func(T, U) {
	return func(t T, u U) {
		settle(unit{}, f(t, u), raiser[unit])
	}
}

// OrTryWith calls other with the same inputs when f fails recoverably.
func (f BiConsumer[T, U]) OrTryWith(other BiConsumer[T, U]) BiConsumer[T, U] {
	return func(t T, u U) error {
		_, err := retry(unit{}, f(t, u), func(error) (unit, error) { return lift(other(t, u)) })
		return err
	}
}

// OrThrow returns a func that panics with a failure of type ft on recoverable failure.
func (f BiConsumer[T, U]) OrThrow(ft FailureType) func(T, U) {
	return func(t T, u U) {
		settle(unit{}, f(t, u), thrower[unit](ft))
	}
}

// As converts recoverable failures to failures of type ft.
func (f BiConsumer[T, U]) As(ft FailureType) BiConsumer[T, U] {
	return func(t T, u U) error {
		_, err := retry(unit{}, f(t, u), converter[unit](ft))
		return err
	}
}

// FallbackTo calls fallback with the same inputs when f fails recoverably.
func (f BiConsumer[T, U]) FallbackTo(fallback func(T, U)) func(T, U) {
	return func(t T, u U) {
		settle(unit{}, f(t, u), func(error) unit {
			fallback(t, u)
			return unit{}
		})
	}
}

// OrDoNothing discards recoverable failures.
func (f BiConsumer[T, U]) OrDoNothing() func(T, U) {
	return func(t T, u U) {
		settle(unit{}, f(t, u), always(unit{}))
	}
}

// ============================================================================
// Runnables
// ============================================================================

// Runnable is a fallible func().
type Runnable func() error

// Run calls f.
func (f Runnable) Run() error {
	return f()
}

// Unchecked returns a func that panics with a *RaisedError on recoverable failure.
func (f Runnable) Unchecked() func() {
	return func() {
		settle(unit{}, f(), raiser[unit])
	}
}

// OrTryWith calls other when f fails recoverably.
func (f Runnable) OrTryWith(other Runnable) Runnable {
	return func() error {
		_, err := retry(unit{}, f(), func(error) (unit, error) { return lift(other()) })
		return err
	}
}

// OrThrow returns a func that panics with a failure of type t on recoverable failure.
func (f Runnable) OrThrow(t FailureType) func() {
	return func() {
		settle(unit{}, f(), thrower[unit](t))
	}
}

// As converts recoverable failures to failures of type t.
func (f Runnable) As(t FailureType) Runnable {
	return func() error {
		_, err := retry(unit{}, f(), converter[unit](t))
		return err
	}
}

// FallbackTo calls fallback when f fails recoverably.
func (f Runnable) FallbackTo(fallback func()) func() {
	return func() {
		settle(unit{}, f(), func(error) unit {
			fallback()
			return unit{}
		})
	}
}

// OrDoNothing discards recoverable failures.
func (f Runnable) OrDoNothing() func() {
	return func() {
		settle(unit{}, f(), always(unit{}))
	}
}
