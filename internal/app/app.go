package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/builtintour/internal/config"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	suites   []runner.Suite
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. Logs
// go to logW so that outW only carries the tour itself.
//
// A nil loader means NewManifestLoader. A manifest that cannot be loaded or
// does not validate is returned as an error. An invalid registry is a
// programmer error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with Go built-ins.
	reg := registry.New()
	if len(modules) == 0 {
		modules = CoreModules(outW, cfg.Seed)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "builtins", reg.Len())

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	if loader == nil {
		loader = NewManifestLoader()
	}
	suites, err := loadSuites(ctx, cfg, loader, reg)
	if err != nil {
		return nil, err
	}

	if err := runner.Validate(suites...); err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		suites:   suites,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Suites returns every suite known to the application, in run order.
func (a *App) Suites() []runner.Suite {
	return a.suites
}
