package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/value"
)

// Result is the outcome of one entry.
type Result struct {
	Suite    string
	Label    string
	Values   []any
	Err      error
	Volatile bool
}

// Line renders the result the way it is written to the output.
func (r Result) Line() string {
	if r.Err != nil {
		return fmt.Sprintf("%s = error: %s", r.Label, r.Err)
	}
	if len(r.Values) == 0 {
		return r.Label + " ="
	}
	return fmt.Sprintf("%s = %s", r.Label, value.Join(r.Values, " "))
}

// Report collects the results of a run in execution order.
type Report struct {
	Results []Result
}

// Failed returns the number of entries whose action failed.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Volatile returns the number of volatile entries that ran.
func (r *Report) Volatile() int {
	n := 0
	for _, res := range r.Results {
		if res.Volatile {
			n++
		}
	}
	return n
}

// Runner writes the results of entries to Out.
type Runner struct {
	Out io.Writer
	// SkipVolatile omits volatile entries entirely.
	SkipVolatile bool
}

// Run executes every entry of every suite in order. The context is checked
// before each entry; on cancellation the partial report is returned with
// the context's error. A write error on Out also aborts the run.
func (r *Runner) Run(ctx context.Context, suites ...Suite) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{}

	for _, s := range suites {
		suiteLogger := logger.With("suite", s.Name)
		suiteLogger.Debug("Suite started.", "entries", len(s.Entries))

		for _, e := range s.Entries {
			if err := ctx.Err(); err != nil {
				suiteLogger.Warn("Run cancelled.", "error", err)
				return report, err
			}
			if e.Volatile && r.SkipVolatile {
				suiteLogger.Debug("Skipping volatile entry.", "label", e.Label)
				continue
			}

			values, err := protect.Run(protect.Func(e.Action))
			res := Result{Suite: s.Name, Label: e.Label, Values: values, Err: err, Volatile: e.Volatile}
			report.Results = append(report.Results, res)
			if err != nil {
				suiteLogger.Info("Entry failed.", "label", e.Label, "error", err)
			} else {
				suiteLogger.Debug("Entry finished.", "label", e.Label)
			}

			if _, err := fmt.Fprintln(r.Out, res.Line()); err != nil {
				return report, fmt.Errorf("failed to write result of '%s': %w", e.Label, err)
			}
		}
	}

	logger.Debug("Run finished.", "results", len(report.Results), "failed", report.Failed())
	return report, nil
}
