// Package mathlib provides the "math" namespace of built-ins.
package mathlib

import (
	"math"

	"github.com/specialistvlad/builtintour/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Seed initializes the pseudo-random source used by math.random.
	Seed uint64
}

// Register registers the handlers and constants with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterValue("math.pi", math.Pi)
	r.RegisterValue("math.huge", math.Inf(1))
	r.RegisterValue("math.maxinteger", int64(math.MaxInt64))
	r.RegisterValue("math.mininteger", int64(math.MinInt64))

	r.Register("math.abs", abs)
	r.Register("math.ceil", rounding("ceil", math.Ceil))
	r.Register("math.floor", rounding("floor", math.Floor))
	r.Register("math.max", extremum("max", func(a, b any) bool { return less(b, a) }))
	r.Register("math.min", extremum("min", less))
	r.Register("math.fmod", fmod)
	r.Register("math.modf", modf)
	r.Register("math.tointeger", toInteger)
	r.Register("math.type", numberType)
	r.Register("math.ult", ult)

	r.Register("math.sqrt", unary("sqrt", math.Sqrt))
	r.Register("math.exp", unary("exp", math.Exp))
	r.Register("math.sin", unary("sin", math.Sin))
	r.Register("math.cos", unary("cos", math.Cos))
	r.Register("math.tan", unary("tan", math.Tan))
	r.Register("math.asin", unary("asin", math.Asin))
	r.Register("math.acos", unary("acos", math.Acos))
	r.Register("math.deg", unary("deg", func(x float64) float64 { return x * (180 / math.Pi) }))
	r.Register("math.rad", unary("rad", func(x float64) float64 { return x * (math.Pi / 180) }))
	r.Register("math.atan", atan)
	r.Register("math.log", logarithm)

	src := newSource(m.Seed)
	r.Register("math.random", src.random)
	r.Register("math.randomseed", src.randomseed)
}
