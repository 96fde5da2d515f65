// Package value defines the dynamic values handled by the built-in library
// and the conversions between them: type names, display strings, numeric
// coercion and raw equality.
//
// Numbers come in two representations, int64 (integers) and float64
// (floats). Other Go numeric kinds are accepted at the edges and normalized.
package value

import (
	"github.com/specialistvlad/builtintour/internal/table"
)

// Function is a callable built-in or closure. Functions are compared by
// identity, which makes them usable as table keys.
type Function struct {
	Name string
	Fn   func(args ...any) ([]any, error)
}

// NewFunction wraps fn under the given display name.
func NewFunction(name string, fn func(args ...any) ([]any, error)) *Function {
	return &Function{Name: name, Fn: fn}
}

// Call invokes the function.
func (f *Function) Call(args ...any) ([]any, error) {
	return f.Fn(args...)
}

// Normalize maps Go integer and float kinds onto int64 and float64.
// Anything else is returned unchanged.
func Normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return float64(n)
	}
	return v
}

// TypeName returns the dynamic type name of v.
func TypeName(v any) string {
	switch Normalize(v).(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case *table.Table:
		return "table"
	case *Function:
		return "function"
	}
	return "userdata"
}

// Truthy reports whether v counts as true in a condition: everything except
// nil and false.
func Truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return true
}

// RawEqual compares a and b without any overloading. Numbers compare by
// mathematical value across integer and float representations; tables and
// functions compare by identity.
func RawEqual(a, b any) bool {
	a, b = Normalize(a), Normalize(b)
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case float64:
			return floatEqualsInt(y, x)
		}
		return false
	case float64:
		switch y := b.(type) {
		case float64:
			return x == y
		case int64:
			return floatEqualsInt(x, y)
		}
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	defer func() { _ = recover() }()
	return a == b
}

func floatEqualsInt(f float64, i int64) bool {
	n, ok := FloatToInteger(f)
	return ok && n == i
}
