package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is the top level of a manifest file.
type fileRoot struct {
	Suites []*Suite `hcl:"suite,block"`
}

// Suite is the HCL schema of a `suite "name" { ... }` block.
type Suite struct {
	Name        string   `hcl:"name,label"`
	Description *string  `hcl:"description,optional"`
	Entries     []*Entry `hcl:"entry,block"`
}

// Entry is the HCL schema of an `entry "label" { ... }` block.
type Entry struct {
	Label     string         `hcl:"label,label"`
	Call      *string        `hcl:"call,optional"`
	Args      hcl.Expression `hcl:"args,optional"`
	Expr      *string        `hcl:"expr,optional"`
	Protected *bool          `hcl:"protected,optional"`
	Volatile  *bool          `hcl:"volatile,optional"`
}
