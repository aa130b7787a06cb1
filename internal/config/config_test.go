package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CI", "true")
	t.Setenv("CONTINUOUS_INTEGRATION", "")
	t.Setenv("npm_config_user_agent", "pnpm/9.0.0 node/v20.0.0")
	t.Setenv("_ROLLDOWN_TEST_CLI", "1")
	t.Setenv("TERM", "dumb")
	t.Setenv("CREATE_ROLLDOWN_TEMPLATES_DIR", "/opt/templates")
	t.Setenv("CREATE_ROLLDOWN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "true", cfg.CI)
	assert.Equal(t, "", cfg.ContinuousIntegration)
	assert.Equal(t, "pnpm/9.0.0 node/v20.0.0", cfg.UserAgent)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "dumb", cfg.Term)
	assert.Equal(t, "/opt/templates", cfg.TemplatesDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("_ROLLDOWN_TEST_CLI", "")
	t.Setenv("CREATE_ROLLDOWN_LOG_LEVEL", "")
	os.Unsetenv("CREATE_ROLLDOWN_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.TestMode)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CREATE_ROLLDOWN_TEMPLATES_DIR", "")
	os.Unsetenv("CREATE_ROLLDOWN_TEMPLATES_DIR")

	dir := filepath.Join(home, ".create-rolldown")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("templates_dir: /srv/templates\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.TemplatesDir)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".create-rolldown")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("templates_dir: [unclosed\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestResolveTemplatesDir_Override(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{TemplatesDir: dir}

	got, err := cfg.ResolveTemplatesDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveTemplatesDir_MissingOverride(t *testing.T) {
	cfg := &Config{TemplatesDir: filepath.Join(t.TempDir(), "nope")}

	_, err := cfg.ResolveTemplatesDir()
	assert.True(t, errors.Is(err, ErrTemplatesNotFound))
}

func TestResolveTemplatesDir_NextToExecutable(t *testing.T) {
	root := resolvedTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin", "templates"), 0o755))

	cfg := &Config{executable: fakeExecutable(filepath.Join(root, "bin", "create-rolldown"))}
	got, err := cfg.ResolveTemplatesDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "bin", "templates"), got)
}

func TestResolveTemplatesDir_SharePrefix(t *testing.T) {
	root := resolvedTempDir(t)
	share := filepath.Join(root, "share", "create-rolldown", "templates")
	require.NoError(t, os.MkdirAll(share, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o755))

	cfg := &Config{executable: fakeExecutable(filepath.Join(root, "bin", "create-rolldown"))}
	got, err := cfg.ResolveTemplatesDir()
	require.NoError(t, err)
	assert.Equal(t, share, got)
}

func TestResolveTemplatesDir_NotFound(t *testing.T) {
	root := resolvedTempDir(t)
	cfg := &Config{executable: fakeExecutable(filepath.Join(root, "bin", "create-rolldown"))}

	_, err := cfg.ResolveTemplatesDir()
	assert.ErrorIs(t, err, ErrTemplatesNotFound)
}

// ─── Test Helpers ───────────────────────────────────────────────

func fakeExecutable(path string) func() (string, error) {
	return func() (string, error) { return path, nil }
}

func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}
