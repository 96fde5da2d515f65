package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/builtintour/internal/config"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/expr"
	"github.com/specialistvlad/builtintour/internal/hcl"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
	"github.com/specialistvlad/builtintour/internal/tour"
	"github.com/specialistvlad/builtintour/internal/yamlconf"
)

// NewManifestLoader returns the loader for every manifest format the
// application understands.
func NewManifestLoader() *config.Dispatcher {
	return config.ByExtension(map[string]config.Loader{
		".hcl":  hcl.NewLoader(),
		".yaml": yamlconf.NewLoader(),
		".yml":  yamlconf.NewLoader(),
	})
}

// loadSuites assembles the built-in suites followed by the manifest ones.
func loadSuites(ctx context.Context, cfg *Config, loader config.Loader, reg *registry.Registry) ([]runner.Suite, error) {
	logger := ctxlog.FromContext(ctx)

	var suites []runner.Suite
	if !cfg.NoBuiltin {
		suites = append(suites, tour.Basic(reg), tour.Math(reg))
	}

	if len(cfg.ManifestPaths) == 0 {
		return suites, nil
	}

	logger.Debug("Loading manifests...", "paths", cfg.ManifestPaths)
	model, err := loader.Load(ctx, cfg.ManifestPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	logger.Debug("Manifests loaded and translated into unified model.", "suites", len(model.Suites))

	extra, err := tour.FromModel(ctx, model, reg, expr.NewEnv(reg))
	if err != nil {
		return nil, err
	}
	logger.Info("Manifests loaded successfully.", "suites", len(extra))

	return append(suites, extra...), nil
}
