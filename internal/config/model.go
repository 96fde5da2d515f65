package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of all loaded
// manifests.
type Model struct {
	Suites []*Suite
}

// Merge appends the suites of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Suites = append(m.Suites, other.Suites...)
}

// Suite is the format-agnostic representation of a `suite` block.
type Suite struct {
	Name        string
	Description string
	Entries     []*Entry
	// Source is the file the suite was declared in.
	Source string
}

// Entry is one demonstration. Exactly one of Call and Expr is set: Call
// names a built-in invoked with Args, Expr is an expression evaluated like
// the load built-in does.
type Entry struct {
	Label string
	Call  string
	Args  []cty.Value
	Expr  string
	// Protected runs the entry in protected mode, displaying the status
	// before the results.
	Protected bool
	Volatile  bool
}
