package mathlib

import (
	"math"

	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

func abs(args varargs.Pack) ([]any, error) {
	n, err := args.CheckNumber(1, "abs")
	if err != nil {
		return nil, err
	}
	if i, ok := n.(int64); ok {
		if i < 0 {
			i = -i
		}
		return []any{i}, nil
	}
	return []any{math.Abs(n.(float64))}, nil
}

// rounding applies round to floats and returns an integer when the result
// fits in one. Integers are returned unchanged.
func rounding(name string, round func(float64) float64) registry.BuiltinFunc {
	return func(args varargs.Pack) ([]any, error) {
		n, err := args.CheckNumber(1, name)
		if err != nil {
			return nil, err
		}
		if i, ok := n.(int64); ok {
			return []any{i}, nil
		}
		f := round(n.(float64))
		if i, ok := value.FloatToInteger(f); ok {
			return []any{i}, nil
		}
		return []any{f}, nil
	}
}

func less(a, b any) bool {
	ai, aInt := a.(int64)
	bi, bInt := b.(int64)
	if aInt && bInt {
		return ai < bi
	}
	af, _ := value.ToFloat(a)
	bf, _ := value.ToFloat(b)
	return af < bf
}

// extremum returns the argument x for which better(x, current) holds
// against every other argument. At least one number is required.
func extremum(name string, better func(a, b any) bool) registry.BuiltinFunc {
	return func(args varargs.Pack) ([]any, error) {
		best, err := args.CheckNumber(1, name)
		if err != nil {
			return nil, err
		}
		for i := 2; i <= args.Len(); i++ {
			n, err := args.CheckNumber(i, name)
			if err != nil {
				return nil, err
			}
			if better(n, best) {
				best = n
			}
		}
		return []any{best}, nil
	}
}

// fmod returns the remainder of a/b truncated towards zero.
func fmod(args varargs.Pack) ([]any, error) {
	a, err := args.CheckNumber(1, "fmod")
	if err != nil {
		return nil, err
	}
	b, err := args.CheckNumber(2, "fmod")
	if err != nil {
		return nil, err
	}
	ai, aInt := a.(int64)
	bi, bInt := b.(int64)
	if aInt && bInt {
		switch bi {
		case 0:
			return nil, varargs.NewArgError(2, "fmod", "zero")
		case -1:
			return []any{int64(0)}, nil
		}
		return []any{ai % bi}, nil
	}
	af, _ := value.ToFloat(a)
	bf, _ := value.ToFloat(b)
	return []any{math.Mod(af, bf)}, nil
}

// modf splits a number into its integral and fractional parts, both floats
// for float input.
func modf(args varargs.Pack) ([]any, error) {
	n, err := args.CheckNumber(1, "modf")
	if err != nil {
		return nil, err
	}
	if i, ok := n.(int64); ok {
		return []any{i, 0.0}, nil
	}
	f := n.(float64)
	ip := math.Trunc(f)
	frac := 0.0
	if f != ip {
		frac = f - ip
	}
	return []any{ip, frac}, nil
}

func toInteger(args varargs.Pack) ([]any, error) {
	v, err := args.CheckAny(1, "tointeger")
	if err != nil {
		return nil, err
	}
	switch n := v.(type) {
	case int64:
		return []any{n}, nil
	case float64:
		if i, ok := value.FloatToInteger(n); ok {
			return []any{i}, nil
		}
	}
	return []any{nil}, nil
}

// numberType reports "integer" or "float", or nil for non-numbers.
func numberType(args varargs.Pack) ([]any, error) {
	v, err := args.CheckAny(1, "type")
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case int64:
		return []any{"integer"}, nil
	case float64:
		return []any{"float"}, nil
	}
	return []any{nil}, nil
}

// ult compares two integers as unsigned values.
func ult(args varargs.Pack) ([]any, error) {
	a, err := args.CheckInteger(1, "ult")
	if err != nil {
		return nil, err
	}
	b, err := args.CheckInteger(2, "ult")
	if err != nil {
		return nil, err
	}
	return []any{uint64(a) < uint64(b)}, nil
}

func unary(name string, fn func(float64) float64) registry.BuiltinFunc {
	return func(args varargs.Pack) ([]any, error) {
		x, err := args.CheckFloat(1, name)
		if err != nil {
			return nil, err
		}
		return []any{fn(x)}, nil
	}
}

func atan(args varargs.Pack) ([]any, error) {
	y, err := args.CheckFloat(1, "atan")
	if err != nil {
		return nil, err
	}
	x := 1.0
	if args.Arg(2) != nil {
		if x, err = args.CheckFloat(2, "atan"); err != nil {
			return nil, err
		}
	}
	return []any{math.Atan2(y, x)}, nil
}

// logarithm is the natural logarithm, or the logarithm in the base given
// as second argument.
func logarithm(args varargs.Pack) ([]any, error) {
	x, err := args.CheckFloat(1, "log")
	if err != nil {
		return nil, err
	}
	if args.Arg(2) == nil {
		return []any{math.Log(x)}, nil
	}
	base, err := args.CheckFloat(2, "log")
	if err != nil {
		return nil, err
	}
	switch base {
	case 2:
		return []any{math.Log2(x)}, nil
	case 10:
		return []any{math.Log10(x)}, nil
	}
	return []any{math.Log(x) / math.Log(base)}, nil
}
