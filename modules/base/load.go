package base

import (
	"github.com/specialistvlad/builtintour/internal/expr"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// load compiles an expression and returns a function evaluating it. A
// source that does not compile yields nil and the error message.
//
// The environment is built on first use so that it sees every module
// registered after this one.
func load(r *registry.Registry) registry.BuiltinFunc {
	var env *expr.Env
	return func(args varargs.Pack) ([]any, error) {
		src, err := args.CheckString(1, "load")
		if err != nil {
			return nil, err
		}
		if env == nil {
			env = expr.NewEnv(r)
		}
		prog, err := env.Compile(src)
		if err != nil {
			return []any{nil, err.Error()}, nil
		}
		chunk := value.NewFunction("chunk", func(...any) ([]any, error) {
			v, err := env.Eval(prog)
			if err != nil {
				return nil, err
			}
			return []any{v}, nil
		})
		return []any{chunk}, nil
	}
}
