package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/builtintour/internal/value"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// Module is the interface that all built-in modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// BuiltinFunc is the Go signature of a built-in operation.
type BuiltinFunc func(args varargs.Pack) ([]any, error)

// Registry holds the built-in functions and constants of one application
// instance.
type Registry struct {
	entries map[string]any
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		entries: make(map[string]any),
	}
}

// Register adds a built-in function under name.
func (r *Registry) Register(name string, fn BuiltinFunc) {
	r.add(name, value.NewFunction(name, func(args ...any) ([]any, error) {
		return fn(varargs.Of(args...))
	}))
}

// RegisterValue adds a constant under name.
func (r *Registry) RegisterValue(name string, v any) {
	r.add(name, value.Normalize(v))
}

func (r *Registry) add(name string, v any) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("built-in with name '%s' already registered", name))
	}
	slog.Debug("Registering built-in.", "name", name, "type", value.TypeName(v))
	r.entries[name] = v
}

// Lookup returns the function or constant registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	v, ok := r.entries[name]
	return v, ok
}

// Function returns the function registered under name. Constants are not
// returned.
func (r *Registry) Function(name string) (*value.Function, bool) {
	fn, ok := r.entries[name].(*value.Function)
	return fn, ok
}

// Call invokes the function registered under name.
func (r *Registry) Call(name string, args ...any) ([]any, error) {
	fn, ok := r.Function(name)
	if !ok {
		return nil, fmt.Errorf("attempt to call unknown built-in '%s'", name)
	}
	return fn.Call(args...)
}

// MustGet returns the entry registered under name and panics when it is
// missing. It is meant for wiring code that relies on core modules.
func (r *Registry) MustGet(name string) any {
	v, ok := r.entries[name]
	if !ok {
		panic(fmt.Sprintf("built-in '%s' is not registered", name))
	}
	return v
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered built-ins.
func (r *Registry) Len() int {
	return len(r.entries)
}
