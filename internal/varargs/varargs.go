// Package varargs models a variadic argument list as an explicit ordered
// sequence with a count accessor, a sub-sequence accessor and the argument
// checks built-in functions use to validate their inputs.
package varargs

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/specialistvlad/builtintour/internal/value"
)

// ErrIndexOutOfRange is returned by Select for a position before the first
// argument.
var ErrIndexOutOfRange = errors.New("index out of range")

// Pack is an ordered argument list. Positions are 1-based in every accessor
// and message; reading past the end yields nil.
type Pack []any

// Of builds a Pack from vals, normalizing numeric kinds.
func Of(vals ...any) Pack {
	p := make(Pack, len(vals))
	for i, v := range vals {
		p[i] = value.Normalize(v)
	}
	return p
}

// Len returns the number of arguments, trailing nils included.
func (p Pack) Len() int {
	return len(p)
}

// Arg returns the n-th argument (1-based) or nil when absent.
func (p Pack) Arg(n int) any {
	if n < 1 || n > len(p) {
		return nil
	}
	return p[n-1]
}

// Select returns the arguments from position n onwards. A negative n counts
// from the end (-1 is the last argument). Zero, or a negative n reaching
// before the first argument, is an error; an n past the end yields an empty
// Pack.
func (p Pack) Select(n int64) (Pack, error) {
	if n < 0 {
		n = int64(len(p)) + n
		if n < 0 {
			return nil, ErrIndexOutOfRange
		}
		return p[n:], nil
	}
	if n == 0 {
		return nil, ErrIndexOutOfRange
	}
	if n > int64(len(p)) {
		return Pack{}, nil
	}
	return p[n-1:], nil
}

// Table returns the arguments as a sequence with the count stored under "n".
func (p Pack) Table() *table.Table {
	t := table.FromValues(p...)
	_ = t.RawSet("n", int64(len(p)))
	return t
}

// ArgError describes an invalid argument passed to a built-in.
type ArgError struct {
	Pos      int
	Function string
	Message  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("bad argument #%d to '%s' (%s)", e.Pos, e.Function, e.Message)
}

// NewArgError builds an ArgError.
func NewArgError(pos int, fname, msg string) *ArgError {
	return &ArgError{Pos: pos, Function: fname, Message: msg}
}

func (p Pack) typeError(n int, fname, expected string) *ArgError {
	got := "no value"
	if n <= len(p) {
		got = value.TypeName(p[n-1])
	}
	return NewArgError(n, fname, fmt.Sprintf("%s expected, got %s", expected, got))
}

// CheckAny fails when argument n is absent.
func (p Pack) CheckAny(n int, fname string) (any, error) {
	if n > len(p) {
		return nil, NewArgError(n, fname, "value expected")
	}
	return p[n-1], nil
}

// CheckNumber returns argument n as int64 or float64. Numeric strings are
// converted.
func (p Pack) CheckNumber(n int, fname string) (any, error) {
	v := p.Arg(n)
	num, ok := value.ToNumber(v)
	if !ok {
		return nil, p.typeError(n, fname, "number")
	}
	return num, nil
}

// CheckFloat returns argument n as float64.
func (p Pack) CheckFloat(n int, fname string) (float64, error) {
	v := p.Arg(n)
	f, ok := value.ToFloat(v)
	if !ok {
		return 0, p.typeError(n, fname, "number")
	}
	return f, nil
}

// CheckInteger returns argument n as int64. Floats with a fractional part
// are rejected.
func (p Pack) CheckInteger(n int, fname string) (int64, error) {
	v := p.Arg(n)
	i, ok := value.ToInteger(v)
	if !ok {
		if _, isNum := value.ToNumber(v); isNum {
			return 0, NewArgError(n, fname, "number has no integer representation")
		}
		return 0, p.typeError(n, fname, "number")
	}
	return i, nil
}

// OptInteger returns argument n as int64, or def when it is absent or nil.
func (p Pack) OptInteger(n int, fname string, def int64) (int64, error) {
	if p.Arg(n) == nil {
		return def, nil
	}
	return p.CheckInteger(n, fname)
}

// CheckString returns argument n as a string. Numbers are converted to
// their display form.
func (p Pack) CheckString(n int, fname string) (string, error) {
	switch v := p.Arg(n).(type) {
	case string:
		return v, nil
	case int64, float64:
		return value.ToString(v), nil
	default:
		return "", p.typeError(n, fname, "string")
	}
}

// CheckTable returns argument n as a table.
func (p Pack) CheckTable(n int, fname string) (*table.Table, error) {
	t, ok := p.Arg(n).(*table.Table)
	if !ok {
		return nil, p.typeError(n, fname, "table")
	}
	return t, nil
}

// CheckFunction returns argument n as a function.
func (p Pack) CheckFunction(n int, fname string) (*value.Function, error) {
	f, ok := p.Arg(n).(*value.Function)
	if !ok {
		return nil, p.typeError(n, fname, "function")
	}
	return f, nil
}
