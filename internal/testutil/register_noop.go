package testutil

import (
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// NoOpModule registers a single "noop" built-in that accepts anything and
// returns no values.
type NoOpModule struct{}

// Register implements the registry.Module interface.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.Register("noop", func(varargs.Pack) ([]any, error) {
		return nil, nil
	})
}
