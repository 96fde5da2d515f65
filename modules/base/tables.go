package base

import (
	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

func rawGet(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "rawget")
	if err != nil {
		return nil, err
	}
	return []any{t.RawGet(args.Arg(2))}, nil
}

func rawSet(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "rawset")
	if err != nil {
		return nil, err
	}
	if err := t.RawSet(args.Arg(2), args.Arg(3)); err != nil {
		return nil, protect.Raise(err.Error())
	}
	return []any{t}, nil
}

func rawEqual(args varargs.Pack) ([]any, error) {
	a, err := args.CheckAny(1, "rawequal")
	if err != nil {
		return nil, err
	}
	b, err := args.CheckAny(2, "rawequal")
	if err != nil {
		return nil, err
	}
	return []any{value.RawEqual(a, b)}, nil
}

func rawLen(args varargs.Pack) ([]any, error) {
	switch v := args.Arg(1).(type) {
	case *table.Table:
		return []any{v.Len()}, nil
	case string:
		return []any{int64(len(v))}, nil
	}
	return nil, varargs.NewArgError(1, "rawlen", "table or string expected")
}

// index reads t[k] through the table's fallback resolver.
func index(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "index")
	if err != nil {
		return nil, err
	}
	v, err := t.Get(args.Arg(2))
	if err != nil {
		return nil, err
	}
	return []any{v}, nil
}

func next(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "next")
	if err != nil {
		return nil, err
	}
	k, v, err := t.Next(args.Arg(2))
	if err != nil {
		return nil, protect.Raise(err.Error())
	}
	if k == nil {
		return []any{nil}, nil
	}
	return []any{k, v}, nil
}

// pairs returns the generic traversal triple: next, t, nil.
func pairs(r *registry.Registry) registry.BuiltinFunc {
	return func(args varargs.Pack) ([]any, error) {
		t, err := args.CheckTable(1, "pairs")
		if err != nil {
			return nil, err
		}
		nextFn, _ := r.Function("next")
		return []any{nextFn, t, nil}, nil
	}
}

var ipairsStep = value.NewFunction("ipairs_step", func(args ...any) ([]any, error) {
	p := varargs.Of(args...)
	t, err := p.CheckTable(1, "ipairs_step")
	if err != nil {
		return nil, err
	}
	i, err := p.CheckInteger(2, "ipairs_step")
	if err != nil {
		return nil, err
	}
	v := t.RawGet(i + 1)
	if v == nil {
		return []any{nil}, nil
	}
	return []any{i + 1, v}, nil
})

// ipairs returns the enumerated traversal triple: step, t, 0. The step
// reads raw, so traversal covers the contiguous part of t and ignores the
// fallback.
func ipairs(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "ipairs")
	if err != nil {
		return nil, err
	}
	return []any{ipairsStep, t, int64(0)}, nil
}

type functionResolver struct {
	fn *value.Function
}

func (r functionResolver) Resolve(t *table.Table, key any) (any, error) {
	results, err := r.fn.Call(t, key)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return results[0], nil
}

func (r functionResolver) Origin() any { return r.fn }

// setFallback installs the resolver consulted on a missing key: a table
// delegates one hop, a function is called with (t, key), nil removes the
// fallback and any other value becomes a constant default.
func setFallback(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "setfallback")
	if err != nil {
		return nil, err
	}
	switch src := args.Arg(2).(type) {
	case nil:
		t.SetFallback(nil)
	case *table.Table:
		t.SetFallback(table.Delegate(src))
	case *value.Function:
		t.SetFallback(functionResolver{fn: src})
	default:
		t.SetFallback(table.Default(src))
	}
	return []any{t}, nil
}

func getFallback(args varargs.Pack) ([]any, error) {
	t, err := args.CheckTable(1, "getfallback")
	if err != nil {
		return nil, err
	}
	if origin, ok := t.Fallback().(table.Origin); ok {
		return []any{origin.Origin()}, nil
	}
	return []any{nil}, nil
}
