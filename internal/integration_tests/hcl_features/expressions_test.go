package integration_tests

import (
	"testing"

	"github.com/specialistvlad/builtintour/internal/app"
	"github.com/specialistvlad/builtintour/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestExpressions_ReachBuiltinsAndLibraryFunctions validates that expr
// entries can mix namespaced built-ins, constants and the expression
// language's own function library.
func TestExpressions_ReachBuiltinsAndLibraryFunctions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
		suite "expressions" {
			entry "namespaced call" {
				expr = "math::floor(3.7) * 2"
			}
			entry "constant" {
				expr = "math.maxinteger"
			}
			entry "library" {
				expr = "join(\"-\", [\"a\", \"b\"])"
			}
			entry "conditional" {
				expr = "math::type(1.5) == \"float\" ? \"yes\" : \"no\""
			}
			entry "template" {
				expr = "\"$${upper(\"go\")}!\""
			}
		}
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t,
		map[string]string{"expressions.hcl": manifest},
		app.Config{NoBuiltin: true},
	)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "namespaced call = 6\n"+
		"constant = 9223372036854775807\n"+
		"library = a-b\n"+
		"conditional = yes\n"+
		"template = GO!\n", result.Output)
}

// TestLoadBuiltin_CompilesExpressionChunks validates that load() exposes
// the same expression language to entries at run time.
func TestLoadBuiltin_CompilesExpressionChunks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
		suite "load" {
			entry "load syntax error" {
				call = "load"
				args = ["1 + "]
			}
			entry "load ok protected" {
				call      = "load"
				args      = ["upper(\"x\")"]
				protected = true
			}
		}
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t,
		map[string]string{"load.hcl": manifest},
		app.Config{NoBuiltin: true},
	)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "load syntax error = nil load:1,5")
	require.Contains(t, result.Output, "Missing expression")
	require.Contains(t, result.Output, "\nload ok protected = true function: ")
}
