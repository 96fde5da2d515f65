package testutil

import "github.com/specialistvlad/builtintour/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single built-in function, constant, or both.
type SimpleModule struct {
	FuncName string
	Func     registry.BuiltinFunc

	ValueName string
	Value     any
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.FuncName != "" && m.Func != nil {
		r.Register(m.FuncName, m.Func)
	}
	if m.ValueName != "" {
		r.RegisterValue(m.ValueName, m.Value)
	}
}
