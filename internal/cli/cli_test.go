package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/builtintour/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "defaults",
			args: []string{"-seed", "7"},
			want: app.Config{Seed: 7, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "positional and repeated manifest flags",
			args: []string{"-m", "a.hcl", "-manifest", "dir", "-seed", "1", "b.yaml"},
			want: app.Config{
				ManifestPaths: []string{"a.hcl", "dir", "b.yaml"},
				Seed:          1,
				LogFormat:     "text",
				LogLevel:      "warn",
			},
		},
		{
			name: "suite list with blanks",
			args: []string{"-suite", "math, ,basic", "-seed", "0"},
			want: app.Config{Suites: []string{"math", "basic"}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "switches",
			args: []string{"-skip-volatile", "-list", "-no-builtin", "-seed", "3", "-log-level", "DEBUG", "-log-format", "json", "x.hcl"},
			want: app.Config{
				ManifestPaths: []string{"x.hcl"},
				SkipVolatile:  true,
				NoBuiltin:     true,
				List:          true,
				Seed:          3,
				LogFormat:     "json",
				LogLevel:      "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			require.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, *cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_SeedDefaultsToClock(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	require.NotZero(t, cfg.Seed)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-skip-volatile")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml"}, "invalid log format 'xml'"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log level 'loud'"},
		{"nothing to run", []string{"-no-builtin"}, "nothing to run"},
		{"empty manifest path", []string{"-m", ""}, "empty path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestSplitPatterns(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "basic, math", want: []string{"basic", "math"}},
		{in: "{basic,math}", want: []string{"{basic,math}"}},
		{in: "x,{a,{b,c}}*,y", want: []string{"x", "{a,{b,c}}*", "y"}},
		{in: "[,a]b,c", want: []string{"[,a]b", "c"}},
		{in: `a\,b,c`, want: []string{`a\,b`, "c"}},
		{in: " , ,", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got := splitPatterns(tc.in)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("patterns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_SuiteBraceAlternation(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-suite", "{basic,math},extra"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.Equal(t, []string{"{basic,math}", "extra"}, cfg.Suites)
}
