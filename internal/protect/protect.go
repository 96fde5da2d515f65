// Package protect implements protected calls: running a function and turning
// a raised failure into an (ok, values) pair instead of aborting the caller.
//
// A failure is raised either by returning an error (usually built with
// Raise) or by panicking. Both forms are caught by Call and CallWithHandler.
// Results that are merely non-finite, such as a float division by zero, are
// ordinary values and never count as failures.
package protect

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/specialistvlad/builtintour/internal/value"
)

// RaisedError carries an arbitrary value raised as a failure.
type RaisedError struct {
	Value any
}

func (e *RaisedError) Error() string {
	if s, ok := e.Value.(string); ok {
		return s
	}
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("(error object is a %s value)", value.TypeName(e.Value))
}

// Raise returns an error carrying v.
func Raise(v any) error {
	return &RaisedError{Value: value.Normalize(v)}
}

// Raisef raises a formatted message.
func Raisef(format string, args ...any) error {
	return &RaisedError{Value: fmt.Sprintf(format, args...)}
}

// ValueOf extracts the raised value from err: the carried value of a
// RaisedError, or the error text for any other error.
func ValueOf(err error) any {
	if err == nil {
		return nil
	}
	var raised *RaisedError
	if errors.As(err, &raised) {
		return raised.Value
	}
	return err.Error()
}

// Func is the shape of a protected function.
type Func func() ([]any, error)

// Run invokes fn and reports a raised failure as an error, recovering panics.
// The returned error is always non-nil on failure.
func Run(fn Func) (results []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fromPanic(r)
		}
	}()
	return fn()
}

func fromPanic(r any) error {
	switch v := r.(type) {
	case *RaisedError:
		return v
	case runtime.Error:
		return &RaisedError{Value: v.Error()}
	case error:
		return v
	default:
		return &RaisedError{Value: value.Normalize(v)}
	}
}

// Call runs fn in protected mode. On success it returns true and fn's
// results; on failure it returns false and a single value, the raised value.
func Call(fn Func) (bool, []any) {
	results, err := Run(fn)
	if err != nil {
		return false, []any{ValueOf(err)}
	}
	return true, results
}

// CallWithHandler is Call with a message handler: on failure, handler is
// given the raised value and its result replaces it. A failure inside the
// handler itself is reported in its place.
func CallWithHandler(fn Func, handler func(any) (any, error)) (bool, []any) {
	results, err := Run(fn)
	if err == nil {
		return true, results
	}
	raised := ValueOf(err)
	handled, herr := Run(func() ([]any, error) {
		v, err := handler(raised)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	})
	if herr != nil {
		return false, []any{ValueOf(herr)}
	}
	return false, handled
}
