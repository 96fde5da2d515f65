package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/builtintour/internal/config"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// translateSuite converts the HCL suite schema into the agnostic model.
func (l *Loader) translateSuite(ctx context.Context, s *Suite) (*config.Suite, error) {
	logger := ctxlog.FromContext(ctx).With("suite", s.Name)
	logger.Debug("Translating HCL suite to internal config model.", "entries", len(s.Entries))

	suite := &config.Suite{Name: s.Name}
	if s.Description != nil {
		suite.Description = *s.Description
	}
	for _, e := range s.Entries {
		entry, err := translateEntry(e)
		if err != nil {
			return nil, fmt.Errorf("suite '%s', entry '%s': %w", s.Name, e.Label, err)
		}
		suite.Entries = append(suite.Entries, entry)
	}
	return suite, nil
}

func translateEntry(e *Entry) (*config.Entry, error) {
	entry := &config.Entry{Label: e.Label}
	if e.Call != nil {
		entry.Call = *e.Call
	}
	if e.Expr != nil {
		entry.Expr = *e.Expr
	}
	if e.Protected != nil {
		entry.Protected = *e.Protected
	}
	if e.Volatile != nil {
		entry.Volatile = *e.Volatile
	}

	if isExprDefined(e.Args) {
		args, err := evalArgs(e)
		if err != nil {
			return nil, err
		}
		entry.Args = args
	}
	return entry, nil
}

// evalArgs evaluates the args attribute, which must be a list or tuple of
// literal values.
func evalArgs(e *Entry) ([]cty.Value, error) {
	val, diags := e.Args.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid args: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("args must be a list, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("args must be known values")
	}

	args := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		args = append(args, v)
	}
	return args, nil
}
