package tour

import (
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
)

// MathSuiteName is the name of the numeric suite.
const MathSuiteName = "math"

// Math returns the suite demonstrating the math built-ins. The registry
// must hold the math and os modules.
func Math(reg *registry.Registry) runner.Suite {
	b := builtins{reg: reg}
	constant := func(name string) runner.Action {
		return func() ([]any, error) {
			return []any{reg.MustGet(name)}, nil
		}
	}

	return runner.Suite{
		Name:        MathSuiteName,
		Description: "numeric built-ins",
		Entries: []runner.Entry{
			{Label: `math.abs(-5)`, Action: b.call("math.abs", -5)},
			{Label: `math.abs(-2.5)`, Action: b.call("math.abs", -2.5)},
			{Label: `math.ceil(3.2)`, Action: b.call("math.ceil", 3.2)},
			{Label: `math.floor(3.7)`, Action: b.call("math.floor", 3.7)},
			{Label: `math.floor(-3.7)`, Action: b.call("math.floor", -3.7)},
			{Label: `math.sqrt(16)`, Action: b.call("math.sqrt", 16)},
			{Label: `math.max(1, 5, 3)`, Action: b.call("math.max", 1, 5, 3)},
			{Label: `math.min(3.5, 1, 2)`, Action: b.call("math.min", 3.5, 1, 2)},
			{Label: `math.fmod(7, 3)`, Action: b.call("math.fmod", 7, 3)},
			{Label: `math.fmod(-7, 3)`, Action: b.call("math.fmod", -7, 3)},
			{Label: `math.fmod(1, 0)`, Action: b.call("math.fmod", 1, 0)},
			{Label: `math.modf(3.7)`, Action: b.call("math.modf", 3.7)},
			{Label: `math.exp(1)`, Action: b.call("math.exp", 1)},
			{Label: `math.log(8, 2)`, Action: b.call("math.log", 8, 2)},
			{Label: `math.log(100, 10)`, Action: b.call("math.log", 100, 10)},
			{Label: `math.sin(math.pi / 2)`, Action: func() ([]any, error) {
				return reg.Call("math.sin", reg.MustGet("math.pi").(float64)/2)
			}},
			{Label: `math.cos(0)`, Action: b.call("math.cos", 0)},
			{Label: `math.atan(1, 1)`, Action: b.call("math.atan", 1, 1)},
			{Label: `math.deg(math.pi)`, Action: func() ([]any, error) {
				return reg.Call("math.deg", reg.MustGet("math.pi"))
			}},
			{Label: `math.rad(180)`, Action: b.call("math.rad", 180)},
			{Label: `math.tointeger(3.0)`, Action: b.call("math.tointeger", 3.0)},
			{Label: `math.tointeger(3.5)`, Action: b.call("math.tointeger", 3.5)},
			{Label: `math.type(1)`, Action: b.call("math.type", 1)},
			{Label: `math.type(1.0)`, Action: b.call("math.type", 1.0)},
			{Label: `math.type("1")`, Action: b.call("math.type", "1")},
			{Label: `math.ult(1, -1)`, Action: b.call("math.ult", 1, -1)},
			{Label: `math.pi`, Action: constant("math.pi")},
			{Label: `math.huge`, Action: constant("math.huge")},
			{Label: `math.maxinteger`, Action: constant("math.maxinteger")},
			{Label: `math.mininteger`, Action: constant("math.mininteger")},
			{Label: `math.randomseed(os.time()); math.random(1, 100)`, Volatile: true, Action: func() ([]any, error) {
				now, err := b.first("os.time")
				if err != nil {
					return nil, err
				}
				if _, err := reg.Call("math.randomseed", now); err != nil {
					return nil, err
				}
				return reg.Call("math.random", 1, 100)
			}},
		},
	}
}
