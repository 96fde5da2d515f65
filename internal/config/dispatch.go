package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/fsutil"
)

// Dispatcher is a Loader that hands every manifest file to the loader
// registered for its extension.
type Dispatcher struct {
	loaders map[string]Loader
}

// ByExtension creates a Dispatcher from a map of extension (".hcl") to
// loader.
func ByExtension(loaders map[string]Loader) *Dispatcher {
	normalized := make(map[string]Loader, len(loaders))
	for ext, l := range loaders {
		normalized[strings.ToLower(ext)] = l
	}
	return &Dispatcher{loaders: normalized}
}

// Extensions returns the supported extensions in sorted order.
func (d *Dispatcher) Extensions() []string {
	exts := make([]string, 0, len(d.loaders))
	for ext := range d.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load expands directories, then loads each file with its loader and
// merges the results in file order. A file given explicitly with an
// unsupported extension is an error.
func (d *Dispatcher) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	exts := d.Extensions()

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		if !info.IsDir() && !fsutil.HasExtension(p, exts...) {
			return nil, fmt.Errorf("unsupported manifest format for %s (supported: %s)", p, strings.Join(exts, ", "))
		}
	}

	files, err := fsutil.FindFiles(paths, exts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := &Model{}
	for _, file := range files {
		loader := d.loaders[strings.ToLower(filepath.Ext(file))]
		m, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("Manifest loading complete.", "suites", len(model.Suites))
	return model, nil
}
