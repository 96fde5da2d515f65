// Package runner executes demonstration entries in order, writing one
// "<label> = <values>" line per entry. A failing entry is reported on its
// own line and never stops the entries after it.
package runner

import (
	"errors"
	"fmt"
	"strings"
)

// Action is the work performed by an entry. It returns the values to
// display or a failure.
type Action func() ([]any, error)

// Entry is one labeled demonstration.
type Entry struct {
	Label  string
	Action Action
	// Volatile marks entries whose output depends on the clock or a random
	// source.
	Volatile bool
}

// Suite is a named, ordered group of entries.
type Suite struct {
	Name        string
	Description string
	Entries     []Entry
}

// Validate checks that suite names are non-empty and unique and that every
// entry has a label and an action. All problems are reported together.
func Validate(suites ...Suite) error {
	var errs []string
	seen := make(map[string]bool)
	for i, s := range suites {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("suite #%d has no name", i+1))
		} else if seen[s.Name] {
			errs = append(errs, fmt.Sprintf("suite '%s' is declared more than once", s.Name))
		}
		seen[s.Name] = true

		for j, e := range s.Entries {
			if e.Label == "" {
				errs = append(errs, fmt.Sprintf("suite '%s': entry #%d has no label", s.Name, j+1))
			}
			if e.Action == nil {
				errs = append(errs, fmt.Sprintf("suite '%s': entry '%s' has no action", s.Name, e.Label))
			}
		}
	}
	if len(errs) > 0 {
		return errors.New("suite validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
