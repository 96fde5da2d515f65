package tour

import (
	"fmt"

	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/specialistvlad/builtintour/internal/value"
)

// builtins is a thin helper over the registry for writing entries.
type builtins struct {
	reg *registry.Registry
}

// call returns an action invoking the built-in name with args.
func (b builtins) call(name string, args ...any) runner.Action {
	return func() ([]any, error) {
		return b.reg.Call(name, args...)
	}
}

// fn returns the function registered under name.
func (b builtins) fn(name string) *value.Function {
	f, ok := b.reg.MustGet(name).(*value.Function)
	if !ok {
		panic(fmt.Sprintf("built-in '%s' is not a function", name))
	}
	return f
}

// first calls name and returns its first result.
func (b builtins) first(name string, args ...any) (any, error) {
	out, err := b.reg.Call(name, args...)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return out[0], nil
}

// traverse runs the generic traversal protocol: the iterator triple
// returned by name(t) is stepped until it yields a nil key, and every pair
// is rendered with format.
func (b builtins) traverse(name string, t *table.Table, format string) ([]any, error) {
	triple, err := b.reg.Call(name, t)
	if err != nil {
		return nil, err
	}
	if len(triple) != 3 {
		return nil, fmt.Errorf("'%s' returned %d values, want 3", name, len(triple))
	}
	step, ok := triple[0].(*value.Function)
	if !ok {
		return nil, fmt.Errorf("'%s' returned a %s iterator", name, value.TypeName(triple[0]))
	}

	var rendered []any
	state, ctl := triple[1], triple[2]
	for {
		out, err := step.Call(state, ctl)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 || out[0] == nil {
			return rendered, nil
		}
		var v any
		if len(out) > 1 {
			v = out[1]
		}
		rendered = append(rendered, fmt.Sprintf(format, value.ToString(out[0]), value.ToString(v)))
		ctl = out[0]
	}
}

// record builds a table from alternating keys and values, in order.
func record(kv ...any) (*table.Table, error) {
	t := table.New()
	for i := 0; i+1 < len(kv); i += 2 {
		if err := t.RawSet(kv[i], kv[i+1]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
