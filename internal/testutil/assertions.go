package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLine checks that the tour output of a HarnessResult contains line
// as a complete line.
func AssertLine(t *testing.T, result *HarnessResult, line string) {
	t.Helper()

	for _, got := range strings.Split(result.Output, "\n") {
		if got == line {
			return
		}
	}
	require.Failf(t, "line not found", "expected output line %q was not found in:\n%s", line, result.Output)
}

// AssertLinesInOrder checks that every line appears in the output, in the
// given order, possibly with other lines in between.
func AssertLinesInOrder(t *testing.T, result *HarnessResult, lines ...string) {
	t.Helper()

	rest := strings.Split(result.Output, "\n")
	for _, want := range lines {
		found := false
		for i, got := range rest {
			if got == want {
				rest = rest[i+1:]
				found = true
				break
			}
		}
		require.Truef(t, found, "expected output line %q was not found in order in:\n%s", want, result.Output)
	}
}
