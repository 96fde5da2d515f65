package tour

import (
	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
	"github.com/specialistvlad/builtintour/internal/table"
	"github.com/specialistvlad/builtintour/internal/value"
)

// BasicSuiteName is the name of the general-purpose suite.
const BasicSuiteName = "basic"

var (
	divide = value.NewFunction("divide", func(args ...any) ([]any, error) {
		q, err := value.Divide(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []any{q}, nil
	})

	floorDivide = value.NewFunction("floordivide", func(args ...any) ([]any, error) {
		q, err := value.FloorDivide(args[0], args[1])
		if err != nil {
			return nil, protect.Raise(err.Error())
		}
		return []any{q}, nil
	})

	errorPrefix = value.NewFunction("prefix", func(args ...any) ([]any, error) {
		return []any{"Error: " + value.ToString(args[0])}, nil
	})
)

// Basic returns the suite demonstrating the general-purpose built-ins.
// The registry must hold the base and os modules.
func Basic(reg *registry.Registry) runner.Suite {
	b := builtins{reg: reg}

	return runner.Suite{
		Name:        BasicSuiteName,
		Description: "general-purpose built-ins",
		Entries: []runner.Entry{
			{Label: `print("hello", 1, nil)`, Action: b.call("print", "hello", 1, nil)},

			{Label: `type(42)`, Action: b.call("type", 42)},
			{Label: `type("text")`, Action: b.call("type", "text")},
			{Label: `type({})`, Action: func() ([]any, error) { return reg.Call("type", table.New()) }},
			{Label: `type(print)`, Action: b.call("type", b.fn("print"))},
			{Label: `type(nil)`, Action: b.call("type", nil)},

			{Label: `tostring(3.0)`, Action: b.call("tostring", 3.0)},
			{Label: `tostring({1, 2, x = 3})`, Action: func() ([]any, error) {
				t := table.FromValues(1, 2)
				if err := t.RawSet("x", 3); err != nil {
					return nil, err
				}
				return reg.Call("tostring", t)
			}},
			{Label: `tonumber("10")`, Action: b.call("tonumber", "10")},
			{Label: `tonumber("0x1F")`, Action: b.call("tonumber", "0x1F")},
			{Label: `tonumber("3.5e2")`, Action: b.call("tonumber", "3.5e2")},
			{Label: `tonumber("ff", 16)`, Action: b.call("tonumber", "ff", 16)},
			{Label: `tonumber("abc")`, Action: b.call("tonumber", "abc")},

			{Label: `select("#", "a", "b", "c")`, Action: b.call("select", "#", "a", "b", "c")},
			{Label: `select(2, "a", "b", "c")`, Action: b.call("select", 2, "a", "b", "c")},
			{Label: `select(-1, "a", "b", "c")`, Action: b.call("select", -1, "a", "b", "c")},

			{Label: `rawequal(1, 1.0)`, Action: b.call("rawequal", 1, 1.0)},
			{Label: `rawequal({}, {})`, Action: func() ([]any, error) {
				return reg.Call("rawequal", table.New(), table.New())
			}},
			{Label: `rawlen({10, 20, 30})`, Action: func() ([]any, error) {
				return reg.Call("rawlen", table.FromValues(10, 20, 30))
			}},
			{Label: `rawlen("hello")`, Action: b.call("rawlen", "hello")},
			{Label: `rawset(t, "k", "v"); rawget(t, "k")`, Action: func() ([]any, error) {
				t := table.New()
				if _, err := reg.Call("setfallback", t, "default"); err != nil {
					return nil, err
				}
				if _, err := reg.Call("rawset", t, "k", "v"); err != nil {
					return nil, err
				}
				return reg.Call("rawget", t, "k")
			}},
			{Label: `rawget(t, "missing")`, Action: func() ([]any, error) {
				t := table.New()
				if _, err := reg.Call("setfallback", t, "default"); err != nil {
					return nil, err
				}
				return reg.Call("rawget", t, "missing")
			}},

			{Label: `setfallback(t, "default"); index(t, "missing")`, Action: func() ([]any, error) {
				t := table.New()
				if _, err := reg.Call("setfallback", t, "default"); err != nil {
					return nil, err
				}
				return reg.Call("index", t, "missing")
			}},
			{Label: `setfallback(t, {color = "red"}); index(t, "color")`, Action: func() ([]any, error) {
				proto, err := record("color", "red")
				if err != nil {
					return nil, err
				}
				t := table.New()
				if _, err := reg.Call("setfallback", t, proto); err != nil {
					return nil, err
				}
				return reg.Call("index", t, "color")
			}},
			{Label: `getfallback(setfallback({}, 0))`, Action: func() ([]any, error) {
				t, err := b.first("setfallback", table.New(), 0)
				if err != nil {
					return nil, err
				}
				return reg.Call("getfallback", t)
			}},

			{Label: `next({10, 20, 30})`, Action: func() ([]any, error) {
				return reg.Call("next", table.FromValues(10, 20, 30))
			}},
			{Label: `ipairs({10, 20, 30})`, Action: func() ([]any, error) {
				return b.traverse("ipairs", table.FromValues(10, 20, 30), "(%s,%s)")
			}},
			{Label: `pairs({x = 1, y = 2})`, Action: func() ([]any, error) {
				t, err := record("x", 1, "y", 2)
				if err != nil {
					return nil, err
				}
				return b.traverse("pairs", t, "%s=%s")
			}},
			{Label: `pack(1, nil, 3)`, Action: b.call("pack", 1, nil, 3)},
			{Label: `unpack({1, 2, 3})`, Action: func() ([]any, error) {
				return reg.Call("unpack", table.FromValues(1, 2, 3))
			}},

			{Label: `assert(true, "ok")`, Action: b.call("assert", true, "ok")},
			{Label: `assert(false, "boom")`, Action: b.call("assert", false, "boom")},

			{Label: `protect(divide, 10, 0)`, Action: b.call("protect", divide, 10, 0)},
			{Label: `protect(divide, 0, 0)`, Action: b.call("protect", divide, 0, 0)},
			{Label: `protect(floordivide, 1, 0)`, Action: b.call("protect", floorDivide, 1, 0)},
			{Label: `protect(raise, "oops")`, Action: b.call("protect", b.fn("raise"), "oops")},
			{Label: `protectwith(raise, prefix, "fail")`, Action: b.call("protectwith", b.fn("raise"), errorPrefix, "fail")},
			{Label: `raise("uncaught")`, Action: b.call("raise", "uncaught")},

			{Label: `load("1 + 2")()`, Action: loadAndRun(b, "1 + 2")},
			{Label: `load("math::floor(3.7) * 2")()`, Action: loadAndRun(b, "math::floor(3.7) * 2")},
			{Label: `load("upper(\"go\")")()`, Action: loadAndRun(b, `upper("go")`)},

			{Label: `os.time()`, Action: b.call("os.time"), Volatile: true},
		},
	}
}

// loadAndRun compiles src with the load built-in and calls the result. A
// compile failure is shown as load's own (nil, message) pair.
func loadAndRun(b builtins, src string) runner.Action {
	return func() ([]any, error) {
		out, err := b.reg.Call("load", src)
		if err != nil {
			return nil, err
		}
		chunk, ok := out[0].(*value.Function)
		if !ok {
			return out, nil
		}
		return chunk.Call()
	}
}
