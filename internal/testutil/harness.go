package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/figvars/internal/app"
	"github.com/specialistvlad/figvars/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
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
	Err       error
	App       *app.App
}

// RunIntegrationTest runs the app with a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// resolves the relative PayloadPath and ConfigPath of cfg against it, then
// builds and runs the app. Startup errors are reported in Err like run
// errors, with a nil App.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg.PayloadPath = inDir(tmpDir, cfg.PayloadPath)
	cfg.ConfigPath = inDir(tmpDir, cfg.ConfigPath)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("FIGVARS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}
	testApp, err := app.NewApp(out, logs, validated, hcl_adapter.NewLoader())
	if err != nil {
		return &HarnessResult{LogOutput: logs.String(), Err: err}
	}

	runErr := testApp.Run(ctx)
	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}

func inDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
