package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/builtintour/internal/ctxlog"
)

// Validate checks that every registered name is a dotted path of
// identifiers and that nothing was registered as nil. All problems are
// reported together.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		if r.entries[name] == nil {
			errs = append(errs, fmt.Sprintf("built-in '%s': registered value is nil", name))
		}
		for _, segment := range strings.Split(name, ".") {
			if !isIdentifier(segment) {
				errs = append(errs, fmt.Sprintf("built-in '%s': '%s' is not a valid name segment", name, segment))
				break
			}
		}
		if strings.Count(name, ".") > 1 {
			logger.Warn("Built-in name is nested more than one level deep; expressions cannot reach it.", "name", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
