package fallible

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrNoFailureType is reported when a zero FailureType is used.
	ErrNoFailureType errorkit.Error = "fallible: failure type is not set"

	// ErrNoConstructor is reported when a failure type has neither a registered
	// factory nor a cause field.
	ErrNoConstructor errorkit.Error = "fallible: failure type has no single-cause constructor"

	// ErrInaccessibleConstructor is reported when the only cause field of a
	// failure type is unexported.
	ErrInaccessibleConstructor errorkit.Error = "fallible: failure type constructor is not accessible"

	// ErrNilFailure is reported when a factory returns a nil failure.
	ErrNilFailure errorkit.Error = "fallible: constructor returned a nil failure"
)

// ============================================================================
// Raised Failures
// ============================================================================

// RaisedError wraps a recoverable failure that escaped an operation turned
// total with Unchecked.
//
// Example:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        var raised *RaisedError
//	        if err, ok := r.(error); ok && errors.As(err, &raised) {
//	            log.Println("operation failed:", raised.Cause)
//	        }
//	    }
//	}()
type RaisedError struct {
	Cause error
}

func (e *RaisedError) Error() string {
	return "raised by operation: " + e.Cause.Error()
}

// Unwrap returns the original failure.
func (e *RaisedError) Unwrap() error {
	return e.Cause
}

// ConfigurationError is returned when a failure type cannot be resolved to a
// construction strategy. It is always classified as fatal.
type ConfigurationError struct {
	Type string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fallible: cannot build failures of type %s: %v", e.Type, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Fatal marks configuration errors as never recoverable.
func (e *ConfigurationError) Fatal() bool { return true }

// ConstructionError is returned when building a failure of the requested type
// fails. Cause is the construction failure; the failure that was being
// converted is kept as suppressed.
type ConstructionError struct {
	Type       string
	Cause      error
	suppressed []error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("fallible: constructing %s failed: %v", e.Type, e.Cause)
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// Suppressed returns the failures that were dropped while constructing.
func (e *ConstructionError) Suppressed() []error {
	return append([]error(nil), e.suppressed...)
}
