//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rolldown/create-rolldown/internal/args"
	"github.com/rolldown/create-rolldown/internal/cli"
	"github.com/rolldown/create-rolldown/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, so no user config file is read
	ProjectDir string // working directory projects are created in
	Out        *bytes.Buffer
	Err        *bytes.Buffer
}

// setupTestEnv sandboxes a CLI run: the bundled templates, an empty home and
// project directory, and test mode so no package manager is spawned.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		Out:        &bytes.Buffer{},
		Err:        &bytes.Buffer{},
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("CREATE_ROLLDOWN_TEMPLATES_DIR", templatesDir(t))
	t.Setenv("_ROLLDOWN_TEST_CLI", "1")
	t.Setenv("npm_config_user_agent", "")
	t.Setenv("CI", "")
	t.Setenv("CONTINUOUS_INTEGRATION", "")

	return env
}

// run executes the CLI with argv in a non-terminal environment.
func (e *testEnv) run(t *testing.T, argv ...string) error {
	t.Helper()
	app := &cli.App{
		In:      strings.NewReader(""),
		Out:     e.Out,
		Err:     e.Err,
		Version: "test",
		Commit:  "none",
		Date:    "never",
		DetectEnv: func(cfg *config.Config) args.Environment {
			return args.Environment{CI: cfg.CI, ContinuousIntegration: cfg.ContinuousIntegration}
		},
		Getwd: func() (string, error) { return e.ProjectDir, nil },
	}
	return app.Run(context.Background(), argv)
}

// templatesDir locates the repository's templates/ directory.
func templatesDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate test file")
	}
	dir := filepath.Join(filepath.Dir(file), "..", "..", "templates")
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("templates directory: %v", err)
	}
	return dir
}

func readPackageJSON(t *testing.T, root string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatalf("reading package.json: %v", err)
	}
	var pkg map[string]interface{}
	if err := json.Unmarshal(data, &pkg); err != nil {
		t.Fatalf("parsing package.json: %v", err)
	}
	return pkg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path to not exist: %s", path)
	}
}
