package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/builtintour/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	file := writeFile(t, dir, "strings.hcl", `
suite "strings" {
  description = "string helpers"

  entry "upper(\"go\")" {
    expr = "upper(\"go\")"
  }

  entry "math.max(1, 5)" {
    call = "math.max"
    args = [1, 5.5, "x", true, null]
  }

  entry "raise" {
    call      = "raise"
    args      = ["boom"]
    protected = true
    volatile  = true
  }
}
`)

	// Act
	model, err := NewLoader().Load(testContext(), dir)

	// Assert
	require.NoError(t, err)
	require.Len(t, model.Suites, 1)
	s := model.Suites[0]
	assert.Equal(t, "strings", s.Name)
	assert.Equal(t, "string helpers", s.Description)
	assert.Equal(t, file, s.Source)
	require.Len(t, s.Entries, 3)

	first := s.Entries[0]
	assert.Equal(t, `upper("go")`, first.Label)
	assert.Equal(t, `upper("go")`, first.Expr)
	assert.Empty(t, first.Call)
	assert.Nil(t, first.Args)

	second := s.Entries[1]
	assert.Equal(t, "math.max", second.Call)
	require.Len(t, second.Args, 5)
	assert.True(t, second.Args[0].RawEquals(cty.NumberIntVal(1)))
	assert.True(t, second.Args[1].RawEquals(cty.NumberFloatVal(5.5)))
	assert.True(t, second.Args[2].RawEquals(cty.StringVal("x")))
	assert.True(t, second.Args[3].RawEquals(cty.True))
	assert.True(t, second.Args[4].IsNull())

	third := s.Entries[2]
	assert.True(t, third.Protected)
	assert.True(t, third.Volatile)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `suite "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			content: `grid "x" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name: "args not a list",
			content: `
suite "x" {
  entry "e" {
    call = "type"
    args = "nope"
  }
}`,
			wantErr: "suite 'x', entry 'e': args must be a list, got string",
		},
		{
			name: "args reference variables",
			content: `
suite "x" {
  entry "e" {
    call = "type"
    args = [var.x]
  }
}`,
			wantErr: "suite 'x', entry 'e': invalid args",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.hcl", tc.content)

			_, err := NewLoader().Load(testContext(), dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `suite "a" {}`)
	writeFile(t, dir, "b.yaml", "not: hcl")
	writeFile(t, dir, "nested/c.hcl", `suite "c" {}`)

	model, err := NewLoader().Load(testContext(), dir)

	require.NoError(t, err)
	require.Len(t, model.Suites, 2)
	assert.Equal(t, "a", model.Suites[0].Name)
	assert.Equal(t, "c", model.Suites[1].Name)
}
