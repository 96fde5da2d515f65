package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/builtintour/internal/app"
	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/internal/runner"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Report    *runner.Report
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// builds an app from cfg and runs it. Relative manifest paths in cfg are
// resolved against that directory; when cfg names none and files is not
// empty, the whole directory is loaded. Modules are registered after the
// core ones. Startup panics are reported through Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Write all manifest files to a temporary directory.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Point the configuration at them.
	if len(cfg.ManifestPaths) == 0 && len(files) > 0 {
		cfg.ManifestPaths = []string{tmpDir}
	} else {
		paths := make([]string, len(cfg.ManifestPaths))
		for i, p := range cfg.ManifestPaths {
			paths[i] = filepath.Join(tmpDir, p)
		}
		cfg.ManifestPaths = paths
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	all := append(app.CoreModules(out, cfg.Seed), modules...)

	var testApp *app.App
	var startErr error
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp, startErr = app.NewApp(out, logBuffer, &cfg, nil, all...)
	}()

	result := &HarnessResult{App: testApp}
	switch {
	case panicErr != nil:
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
	case startErr != nil:
		result.Err = startErr
	default:
		result.Report, result.Err = testApp.Run(ctx)
	}

	if os.Getenv("BUILTINTOUR_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result.Output = out.String()
	result.LogOutput = logBuffer.String()
	return result
}
