/*
Package fallible provides fallible variants of Go's everyday function shapes
together with combinators that decide what happens when they fail.

# Overview

A fallible shape is a named func type whose last result is an error:

	type Func[T, R any] func(T) (R, error)

Any ordinary function with the right signature converts to it directly:

	atoi := fallible.Func[string, int](strconv.Atoi)

A combinator turns the fallible shape into its plain Go counterpart
(func(T) R for a Func), with the failure handling already settled. The result
can be dropped anywhere a normal function is expected.

# Combinators

Settling combinators return the plain shape:

  - Unchecked: panic with a *RaisedError whose Cause is the failure
  - OrThrow: panic with a failure of a caller-chosen type built around the failure
  - FallbackTo: call an infallible alternate with the same inputs
  - OrReturn: return a default value

Chaining combinators keep the shape fallible:

  - OrTryWith: call a fallible alternate with the same inputs
  - As: return a failure of a caller-chosen type instead

Some shapes carry their own defaults: BinaryOperator has OrReturnLeft and
OrReturnRight, UnaryOperator has OrReturnSelf, the predicates have
OrReturnTrue and OrReturnFalse, and the consumers and Runnable have
OrDoNothing.

	parse := atoi.OrReturn(-1)
	parse("42")   // 42
	parse("nope") // -1

	lookup := fromCache.OrTryWith(fromDatabase).FallbackTo(placeholder)

# Fatal Failures

Exactly one recovery fires per failing call, and only for recoverable
failures. Fatal failures always pass through untouched:

  - a panic raised by the operation is never recovered
  - an error marked with Fatal, or any error in whose chain a
    Fatal() bool method returns true, is returned (or, from a plain shape,
    panicked) as the very same value

	load := fallible.Func[string, []byte](func(path string) ([]byte, error) {
	    if path == "" {
	        return nil, fallible.Fatal(errors.New("empty path"))
	    }
	    return os.ReadFile(path)
	}).OrReturn(nil)

	load("")        // panics with the fatal error
	load("missing") // nil

# Failure Types

OrThrow and As build failures through an Instantiator. A failure type only
needs a way to receive its cause: either a struct field of type error tagged
`fallible:"cause"` or named Cause or Err,

	type NotFound struct {
	    Cause error
	}

	func (e *NotFound) Error() string { return "not found: " + e.Cause.Error() }

	get := fetch.OrThrow(fallible.TypeOf[*NotFound]())

or a factory registered with Register or WithFactory. The construction
strategy of a type is resolved once and cached; a type that cannot be built
yields a *ConfigurationError, which is fatal. When the constructor itself
fails, a *ConstructionError is produced that keeps the original failure in
Suppressed.

# Concurrency

Combinators run the wrapped operation synchronously on the calling goroutine
and start no goroutines of their own. An Instantiator, including the
process-wide Default, is safe for concurrent use.

# Package Import

	import "github.com/Pure-Company/fallible"
*/
package fallible
