package integration_tests

import (
	"testing"

	"github.com/specialistvlad/builtintour/internal/app"
	"github.com/specialistvlad/builtintour/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestManifests_MergeFromDirectoryPath validates that the loader discovers
// HCL and YAML manifests under one directory and runs their suites after
// the built-in ones.
func TestManifests_MergeFromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"tour/a.hcl": `
			suite "from_hcl" {
				entry "math.max(1, 5)" {
					call = "math.max"
					args = [1, 5]
				}
			}
		`,
		"tour/nested/b.yaml": `
suites:
  - name: from_yaml
    entries:
      - label: strlen("four")
        expr: strlen("four")
`,
		"tour/notes.txt": "ignored",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		ManifestPaths: []string{"tour"},
		SkipVolatile:  true,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertLinesInOrder(t, result,
		"math.pi = 3.1415926535898",
		"math.max(1, 5) = 5",
		`strlen("four") = 4`,
	)
	names := make([]string, 0, len(result.App.Suites()))
	for _, s := range result.App.Suites() {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"basic", "math", "from_hcl", "from_yaml"}, names)
}

// TestManifests_SingleFilePath validates that a single manifest file can be
// given directly instead of a directory.
func TestManifests_SingleFilePath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"only.yml": `
suites:
  - name: single
    entries:
      - label: one
        expr: "1"
`,
		"other.yml": `
suites:
  - name: skipped
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		ManifestPaths: []string{"only.yml"},
		NoBuiltin:     true,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "one = 1\n", result.Output)
}
