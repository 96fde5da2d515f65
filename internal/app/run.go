package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/runner"
)

// Run executes the selected suites and writes the tour to the output
// writer. In list mode the labels are printed instead. Failing entries do
// not make Run fail; they are part of the report.
func (a *App) Run(ctx context.Context) (*runner.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	suites, err := a.selectSuites()
	if err != nil {
		return nil, err
	}

	if a.config.List {
		return &runner.Report{}, a.list(suites)
	}

	r := &runner.Runner{Out: a.outW, SkipVolatile: a.config.SkipVolatile}
	report, err := r.Run(ctx, suites...)
	if err != nil {
		return report, fmt.Errorf("tour aborted: %w", err)
	}

	a.logger.Info("Tour finished.",
		"entries", len(report.Results),
		"failed", report.Failed(),
		"volatile", report.Volatile(),
	)
	return report, nil
}

// selectSuites applies the suite filter, keeping run order. Filter entries
// are glob patterns, so a plain name matches only itself.
func (a *App) selectSuites() ([]runner.Suite, error) {
	if len(a.config.Suites) == 0 {
		return a.suites, nil
	}

	names := make([]string, 0, len(a.suites))
	for _, s := range a.suites {
		names = append(names, s.Name)
	}

	wanted := make(map[string]bool, len(a.suites))
	for _, pattern := range a.config.Suites {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid suite pattern '%s': %w", pattern, err)
		}
		matched := false
		for _, name := range names {
			if g.Match(name) {
				wanted[name] = true
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown suite '%s' (available: %s)", pattern, strings.Join(names, ", "))
		}
	}

	var selected []runner.Suite
	for _, s := range a.suites {
		if wanted[s.Name] {
			selected = append(selected, s)
		}
	}
	a.logger.Debug("Suites selected.", "count", len(selected))
	return selected, nil
}

func (a *App) list(suites []runner.Suite) error {
	for _, s := range suites {
		header := s.Name
		if s.Description != "" {
			header += ": " + s.Description
		}
		if _, err := fmt.Fprintln(a.outW, header); err != nil {
			return err
		}
		for _, e := range s.Entries {
			line := "  " + e.Label
			if e.Volatile {
				line += " (volatile)"
			}
			if _, err := fmt.Fprintln(a.outW, line); err != nil {
				return err
			}
		}
	}
	return nil
}
