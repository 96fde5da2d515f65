package integration_tests

import (
	"testing"

	"github.com/specialistvlad/builtintour/internal/app"
	"github.com/specialistvlad/builtintour/internal/testutil"
	"github.com/specialistvlad/builtintour/internal/varargs"
	"github.com/stretchr/testify/require"
)

// TestFailingEntries_AreIsolated validates that an entry error or a Go
// panic inside a built-in is reported on its own line and the run carries
// on with the next entry.
func TestFailingEntries_AreIsolated(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
		suite "isolation" {
			entry "before" {
				expr = "1 + 1"
			}
			entry "raise(\"boom\")" {
				call = "raise"
				args = ["boom"]
			}
			entry "crash()" {
				call = "crash"
			}
			entry "protected crash()" {
				call      = "crash"
				protected = true
			}
			entry "after" {
				expr = "2 + 2"
			}
		}
	`
	crash := &testutil.SimpleModule{
		FuncName: "crash",
		Func: func(varargs.Pack) ([]any, error) {
			var m map[string]int
			m["x"] = 1
			return nil, nil
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t,
		map[string]string{"isolation.hcl": manifest},
		app.Config{NoBuiltin: true},
		crash,
	)

	// --- Assert ---
	require.NoError(t, result.Err, "failing entries must not fail the run")
	require.Equal(t, "before = 2\n"+
		"raise(\"boom\") = error: boom\n"+
		"crash() = error: assignment to entry in nil map\n"+
		"protected crash() = false assignment to entry in nil map\n"+
		"after = 4\n", result.Output)
	require.Equal(t, 2, result.Report.Failed())
}
