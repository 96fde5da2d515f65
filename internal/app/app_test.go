package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "manifests only", cfg: Config{ManifestPaths: []string{"a.hcl"}, NoBuiltin: true}},
		{name: "nothing to run", cfg: Config{NoBuiltin: true}, wantErr: "nothing to run"},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "invalid log format 'xml'"},
		{name: "bad level", cfg: Config{LogLevel: "trace"}, wantErr: "invalid log level 'trace'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *got)
		})
	}
}

func TestNewApp_LogsCarryRunID(t *testing.T) {
	// Arrange
	var out, logs bytes.Buffer
	cfg := &Config{LogLevel: "debug", LogFormat: "json", SkipVolatile: true}

	// Act
	a, err := NewApp(&out, &logs, cfg, nil)
	require.NoError(t, err)
	_, err = a.Run(context.Background())

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	runIDs := make(map[string]bool)
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), line)
		id, ok := record["run_id"].(string)
		require.True(t, ok, "log record without run_id: %s", line)
		runIDs[id] = true
	}
	assert.Len(t, runIDs, 1, "every record of one run shares its run_id")
	assert.NotContains(t, out.String(), "run_id", "logs never reach the tour output")
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{}, nil)

	require.NoError(t, err)
	for _, name := range []string{"print", "protectwith", "math.floor", "math.pi", "os.time"} {
		_, ok := a.Registry().Lookup(name)
		assert.True(t, ok, name)
	}
	require.Len(t, a.Suites(), 2)
	assert.Equal(t, "basic", a.Suites()[0].Name)
	assert.Equal(t, "math", a.Suites()[1].Name)
}

func TestRun_ListMode(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	a, err := NewApp(&out, &bytes.Buffer{}, &Config{List: true}, nil)
	require.NoError(t, err)

	// Act
	report, err := a.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.True(t, strings.HasPrefix(out.String(), "basic: general-purpose built-ins\n  "), out.String())
	assert.Contains(t, out.String(), "\nmath: numeric built-ins\n")
	assert.Contains(t, out.String(), "  os.time() (volatile)\n")
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		level     string
		debugSeen bool
		warnSeen  bool
	}{
		{level: "debug", debugSeen: true, warnSeen: true},
		{level: "", debugSeen: false, warnSeen: true},
		{level: "error", debugSeen: false, warnSeen: false},
	}

	for _, tc := range testCases {
		t.Run("level "+tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tc.level, "text", &buf)

			logger.Debug("debug message")
			logger.Warn("warn message")

			assert.Equal(t, tc.debugSeen, strings.Contains(buf.String(), "debug message"))
			assert.Equal(t, tc.warnSeen, strings.Contains(buf.String(), "warn message"))
		})
	}
}
