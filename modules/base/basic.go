package base

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// printTo writes its arguments' display strings separated by tabs.
func printTo(out io.Writer) registry.BuiltinFunc {
	return func(args varargs.Pack) ([]any, error) {
		if _, err := fmt.Fprintln(out, value.Join(args, "\t")); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func typeOf(args varargs.Pack) ([]any, error) {
	v, err := args.CheckAny(1, "type")
	if err != nil {
		return nil, err
	}
	return []any{value.TypeName(v)}, nil
}

func toString(args varargs.Pack) ([]any, error) {
	v, err := args.CheckAny(1, "tostring")
	if err != nil {
		return nil, err
	}
	return []any{value.ToString(v)}, nil
}

// toNumber converts numbers and numeric strings. With a base, the first
// argument must be a string of digits in that base.
func toNumber(args varargs.Pack) ([]any, error) {
	if args.Arg(2) == nil {
		v, err := args.CheckAny(1, "tonumber")
		if err != nil {
			return nil, err
		}
		if n, ok := value.ToNumber(v); ok {
			return []any{n}, nil
		}
		return []any{nil}, nil
	}

	base, err := args.CheckInteger(2, "tonumber")
	if err != nil {
		return nil, err
	}
	s, ok := args.Arg(1).(string)
	if !ok {
		return nil, varargs.NewArgError(1, "tonumber",
			"string expected, got "+value.TypeName(args.Arg(1)))
	}
	if base < 2 || base > 36 {
		return nil, varargs.NewArgError(2, "tonumber", "base out of range")
	}
	if n, ok := value.ParseInteger(strings.ToLower(s), int(base)); ok {
		return []any{n}, nil
	}
	return []any{nil}, nil
}

// selectArgs returns the arguments after the first from position n, or
// their count when n is "#".
func selectArgs(args varargs.Pack) ([]any, error) {
	rest, _ := args.Select(2)
	if s, ok := args.Arg(1).(string); ok && s == "#" {
		return []any{int64(rest.Len())}, nil
	}
	n, err := args.CheckInteger(1, "select")
	if err != nil {
		return nil, err
	}
	picked, err := rest.Select(n)
	if err != nil {
		return nil, varargs.NewArgError(1, "select", err.Error())
	}
	return picked, nil
}

// assertArgs returns all of its arguments when the first is truthy and raises
// the second (or a default message) otherwise.
func assertArgs(args varargs.Pack) ([]any, error) {
	v, err := args.CheckAny(1, "assert")
	if err != nil {
		return nil, err
	}
	if value.Truthy(v) {
		return args, nil
	}
	if args.Len() >= 2 {
		return nil, protect.Raise(args.Arg(2))
	}
	return nil, protect.Raise("assertion failed!")
}

func pack(args varargs.Pack) ([]any, error) {
	return []any{args.Table()}, nil
}

// unpack returns t[i], ..., t[j]; i defaults to 1 and j to the border.
func unpack(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "unpack")
	if err != nil {
		return nil, err
	}
	i, err := args.OptInteger(2, "unpack", 1)
	if err != nil {
		return nil, err
	}
	j, err := args.OptInteger(3, "unpack", t.Len())
	if err != nil {
		return nil, err
	}
	return t.Unpack(i, j), nil
}
