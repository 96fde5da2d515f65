// Package expr evaluates textual expressions for the "load" built-in.
//
// Expressions use the HCL expression syntax. They can call cty's standard
// function library (abs, upper, join, ...) and every function of the
// built-in registry, with dotted names written as namespaces:
// "math.floor" is called as math::floor(3.7). Registry constants are
// exposed as variables, so "math.pi" reads as math.pi.
package expr

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// stdlibFunctions is the subset of cty's function library exposed to
// expressions.
func stdlibFunctions() map[string]function.Function {
	return map[string]function.Function{
		"abs":        stdlib.AbsoluteFunc,
		"ceil":       stdlib.CeilFunc,
		"floor":      stdlib.FloorFunc,
		"log":        stdlib.LogFunc,
		"pow":        stdlib.PowFunc,
		"signum":     stdlib.SignumFunc,
		"max":        stdlib.MaxFunc,
		"min":        stdlib.MinFunc,
		"parseint":   stdlib.ParseIntFunc,
		"upper":      stdlib.UpperFunc,
		"lower":      stdlib.LowerFunc,
		"strlen":     stdlib.StrlenFunc,
		"substr":     stdlib.SubstrFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"replace":    stdlib.ReplaceFunc,
		"join":       stdlib.JoinFunc,
		"split":      stdlib.SplitFunc,
		"reverse":    stdlib.ReverseFunc,
		"format":     stdlib.FormatFunc,
		"length":     stdlib.LengthFunc,
		"range":      stdlib.RangeFunc,
		"concat":     stdlib.ConcatFunc,
		"contains":   stdlib.ContainsFunc,
		"sort":       stdlib.SortFunc,
		"keys":       stdlib.KeysFunc,
		"values":     stdlib.ValuesFunc,
		"merge":      stdlib.MergeFunc,
		"coalesce":   stdlib.CoalesceFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
	}
}

// Env is the evaluation environment shared by all compiled programs.
type Env struct {
	evalCtx *hcl.EvalContext
}

// NewEnv builds an environment from cty's function library and the
// registry's built-ins. Registry functions shadow library functions of the
// same name. Constants that cannot be represented (NaN) are left out.
func NewEnv(reg *registry.Registry) *Env {
	funcs := stdlibFunctions()
	vars := make(map[string]cty.Value)
	namespaces := make(map[string]map[string]cty.Value)

	for _, name := range reg.Names() {
		entry, _ := reg.Lookup(name)
		if fn, ok := entry.(*value.Function); ok {
			funcs[strings.ReplaceAll(name, ".", "::")] = wrapFunction(fn)
			continue
		}
		converted, err := ToCty(entry)
		if err != nil {
			continue
		}
		ns, field, nested := strings.Cut(name, ".")
		if !nested {
			vars[name] = converted
			continue
		}
		if namespaces[ns] == nil {
			namespaces[ns] = make(map[string]cty.Value)
		}
		namespaces[ns][field] = converted
	}
	for ns, fields := range namespaces {
		vars[ns] = cty.ObjectVal(fields)
	}

	return &Env{evalCtx: &hcl.EvalContext{Variables: vars, Functions: funcs}}
}

// wrapFunction exposes a built-in as a variadic cty function. Only the
// first result is kept; no result evaluates to null.
func wrapFunction(fn *value.Function) function.Function {
	return function.New(&function.Spec{
		Description: fmt.Sprintf("Built-in %s.", fn.Name),
		VarParam: &function.Parameter{
			Name:             "args",
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			goArgs := make([]any, len(args))
			for i, arg := range args {
				conv, err := FromCty(arg)
				if err != nil {
					return cty.NilVal, err
				}
				goArgs[i] = conv
			}
			results, err := fn.Call(goArgs...)
			if err != nil {
				return cty.NilVal, err
			}
			if len(results) == 0 {
				return cty.NullVal(cty.DynamicPseudoType), nil
			}
			return ToCty(results[0])
		},
	})
}

// HasFunction reports whether name (with "::" namespaces) can be called.
func (e *Env) HasFunction(name string) bool {
	_, ok := e.evalCtx.Functions[name]
	return ok
}

// HasVariable reports whether name is a root variable of the environment.
func (e *Env) HasVariable(name string) bool {
	_, ok := e.evalCtx.Variables[name]
	return ok
}

// Program is a compiled expression.
type Program struct {
	Source string
	expr   hclsyntax.Expression
}

// Compile parses src and checks that every function and root variable it
// references exists in the environment.
func (e *Env) Compile(src string) (*Program, error) {
	parsed, diags := hclsyntax.ParseExpression([]byte(src), "load", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}
	for _, name := range FunctionsUsed(parsed) {
		if !e.HasFunction(name) {
			return nil, fmt.Errorf("call to unknown function %q", name)
		}
	}
	for _, name := range RootVariables(parsed) {
		if !e.HasVariable(name) {
			return nil, fmt.Errorf("reference to unknown variable %q", name)
		}
	}
	return &Program{Source: src, expr: parsed}, nil
}

// Eval evaluates a compiled program.
func (e *Env) Eval(p *Program) (any, error) {
	v, diags := p.expr.Value(e.evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	return FromCty(v)
}

// Evaluate compiles and evaluates src in one step.
func (e *Env) Evaluate(src string) (any, error) {
	p, err := e.Compile(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(p)
}
