// Package oslib provides the "os" namespace of built-ins: wall-clock time,
// elapsed time and environment variables.
package oslib

import (
	"log/slog"
	"os"
	"time"

	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
	// LookupEnv reads an environment variable. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	now := m.Now
	if now == nil {
		now = time.Now
	}
	lookupEnv := m.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	started := now()

	r.Register("os.time", func(varargs.Pack) ([]any, error) {
		return []any{now().Unix()}, nil
	})

	r.Register("os.clock", func(varargs.Pack) ([]any, error) {
		return []any{now().Sub(started).Seconds()}, nil
	})

	r.Register("os.getenv", func(args varargs.Pack) ([]any, error) {
		key, err := args.CheckString(1, "getenv")
		if err != nil {
			return nil, err
		}
		v, ok := lookupEnv(key)
		if !ok {
			slog.Debug("Environment variable is not set.", "key", key)
			return []any{nil}, nil
		}
		return []any{v}, nil
	})
}
