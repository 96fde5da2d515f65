// Package yamlconf provides the YAML implementation of the config.Loader
// interface.
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/builtintour/internal/config"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

type document struct {
	Suites []suiteDoc `yaml:"suites"`
}

type suiteDoc struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Entries     []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Label     string `yaml:"label"`
	Call      string `yaml:"call"`
	Args      []any  `yaml:"args"`
	Expr      string `yaml:"expr"`
	Protected bool   `yaml:"protected"`
	Volatile  bool   `yaml:"volatile"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every .yaml or .yml file under paths. Unknown fields are
// rejected; a file may hold several documents.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		suites, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		for _, s := range suites {
			s.Source = file
		}
		model.Suites = append(model.Suites, suites...)
	}

	logger.Debug("YAML loading complete.", "suites", len(model.Suites))
	return model, nil
}

func decode(data []byte) ([]*config.Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var suites []*config.Suite
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return suites, nil
		}
		if err != nil {
			return nil, err
		}
		for _, sd := range doc.Suites {
			s, err := translateSuite(sd)
			if err != nil {
				return nil, err
			}
			suites = append(suites, s)
		}
	}
}

func translateSuite(sd suiteDoc) (*config.Suite, error) {
	s := &config.Suite{Name: sd.Name, Description: sd.Description}
	for _, ed := range sd.Entries {
		var args []cty.Value
		for i, a := range ed.Args {
			v, err := config.ValueFromGo(a)
			if err != nil {
				return nil, fmt.Errorf("suite '%s', entry '%s': args[%d]: %w", sd.Name, ed.Label, i, err)
			}
			args = append(args, v)
		}
		s.Entries = append(s.Entries, &config.Entry{
			Label:     ed.Label,
			Call:      ed.Call,
			Args:      args,
			Expr:      ed.Expr,
			Protected: ed.Protected,
			Volatile:  ed.Volatile,
		})
	}
	return s, nil
}
