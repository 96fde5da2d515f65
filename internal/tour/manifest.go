package tour

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/specialistvlad/builtintour/internal/config"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/expr"
	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
)

// Validate checks manifest suites against the registry and the expression
// environment: names and labels are present, suite names are unique, each
// entry sets exactly one of call or expr, called built-ins exist, args
// convert to runtime values and expressions compile. All problems are
// reported together.
func Validate(ctx context.Context, model *config.Model, reg *registry.Registry, env *expr.Env) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string
	seen := make(map[string]bool)

	for i, s := range model.Suites {
		where := fmt.Sprintf("suite '%s'", s.Name)
		if s.Source != "" {
			where += " (" + s.Source + ")"
		}
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Sprintf("suite #%d has no name", i+1))
		case seen[s.Name]:
			errs = append(errs, where+": declared more than once")
		}
		seen[s.Name] = true

		for j, e := range s.Entries {
			if e.Label == "" {
				errs = append(errs, fmt.Sprintf("%s: entry #%d has no label", where, j+1))
			}
			if err := validateEntry(e, reg, env); err != nil {
				errs = append(errs, fmt.Sprintf("%s, entry '%s': %s", where, e.Label, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Manifest validation passed.", "suites", len(model.Suites))
	return nil
}

func validateEntry(e *config.Entry, reg *registry.Registry, env *expr.Env) error {
	switch {
	case e.Call == "" && e.Expr == "":
		return fmt.Errorf("one of call or expr is required")
	case e.Call != "" && e.Expr != "":
		return fmt.Errorf("call and expr are mutually exclusive")
	case e.Expr != "" && len(e.Args) > 0:
		return fmt.Errorf("args are only allowed with call")
	}

	if e.Call != "" {
		if _, ok := reg.Function(e.Call); !ok {
			return fmt.Errorf("unknown built-in '%s'%s", e.Call, suggest(e.Call, reg))
		}
		_, err := convertArgs(e)
		return err
	}

	if _, err := env.Compile(e.Expr); err != nil {
		return fmt.Errorf("invalid expr: %w", err)
	}
	return nil
}

// suggest returns a "did you mean" hint naming the closest registered
// function, or "" when nothing resembles name.
func suggest(name string, reg *registry.Registry) string {
	var functions []string
	for _, n := range reg.Names() {
		if _, ok := reg.Function(n); ok {
			functions = append(functions, n)
		}
	}
	matches := fuzzy.Find(name, functions)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", matches[0].Str)
}

func convertArgs(e *config.Entry) ([]any, error) {
	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		v, err := expr.FromCty(a)
		if err != nil {
			return nil, fmt.Errorf("args[%d]: %w", i, err)
		}
		args[i] = v
	}
	return args, nil
}

// FromModel validates the manifest suites and translates them into runner
// suites.
func FromModel(ctx context.Context, model *config.Model, reg *registry.Registry, env *expr.Env) ([]runner.Suite, error) {
	if err := Validate(ctx, model, reg, env); err != nil {
		return nil, err
	}

	suites := make([]runner.Suite, 0, len(model.Suites))
	for _, s := range model.Suites {
		suite := runner.Suite{Name: s.Name, Description: s.Description}
		for _, e := range s.Entries {
			action, err := entryAction(e, reg, env)
			if err != nil {
				return nil, fmt.Errorf("suite '%s', entry '%s': %w", s.Name, e.Label, err)
			}
			suite.Entries = append(suite.Entries, runner.Entry{
				Label:    e.Label,
				Action:   action,
				Volatile: e.Volatile,
			})
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func entryAction(e *config.Entry, reg *registry.Registry, env *expr.Env) (runner.Action, error) {
	var action runner.Action
	if e.Call != "" {
		// Args are converted on every call so each run gets fresh tables.
		action = func() ([]any, error) {
			args, err := convertArgs(e)
			if err != nil {
				return nil, err
			}
			return reg.Call(e.Call, args...)
		}
	} else {
		prog, err := env.Compile(e.Expr)
		if err != nil {
			return nil, err
		}
		action = func() ([]any, error) {
			v, err := env.Eval(prog)
			if err != nil {
				return nil, err
			}
			return []any{v}, nil
		}
	}

	if !e.Protected {
		return action, nil
	}
	return func() ([]any, error) {
		ok, results := protect.Call(protect.Func(action))
		return append([]any{ok}, results...), nil
	}, nil
}
