package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolldown/create-rolldown/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by Load.
const (
	KeyTemplatesDir          = "templates_dir"
	KeyLogLevel              = "log_level"
	KeyUserAgent             = "user_agent"
	KeyCI                    = "ci"
	KeyContinuousIntegration = "continuous_integration"
	KeyTestMode              = "test_cli"
	KeyTerm                  = "term"
)

// Config is the resolved runtime configuration.
type Config struct {
	TemplatesDir          string
	LogLevel              string
	UserAgent             string
	CI                    string
	ContinuousIntegration string
	TestMode              bool
	Term                  string

	// executable overrides os.Executable in tests.
	executable func() (string, error)
}

// Dir returns the path to the config directory (~/.create-rolldown/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file (if any) and the environment. Environment
// values take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")

	unprefixed := map[string]string{
		KeyUserAgent:             "npm_config_user_agent",
		KeyCI:                    "CI",
		KeyContinuousIntegration: "CONTINUOUS_INTEGRATION",
		KeyTestMode:              "_ROLLDOWN_TEST_CLI",
		KeyTerm:                  "TERM",
	}
	for key, env := range unprefixed {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	path := FilePath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return &Config{
		TemplatesDir:          v.GetString(KeyTemplatesDir),
		LogLevel:              v.GetString(KeyLogLevel),
		UserAgent:             v.GetString(KeyUserAgent),
		CI:                    v.GetString(KeyCI),
		ContinuousIntegration: v.GetString(KeyContinuousIntegration),
		TestMode:              v.GetString(KeyTestMode) != "",
		Term:                  v.GetString(KeyTerm),
	}, nil
}

// ErrTemplatesNotFound is returned when no template directory can be located.
var ErrTemplatesNotFound = errors.New("templates directory not found")

// ResolveTemplatesDir returns the directory holding the template-<name>
// trees: the configured override, then <exe dir>/templates, then
// <exe dir>/../share/create-rolldown/templates.
func (c *Config) ResolveTemplatesDir() (string, error) {
	if c.TemplatesDir != "" {
		if isDir(c.TemplatesDir) {
			return filepath.Abs(c.TemplatesDir)
		}
		return "", fmt.Errorf("%s=%s: %w", branding.EnvVar(KeyTemplatesDir), c.TemplatesDir, ErrTemplatesNotFound)
	}

	executable := c.executable
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeDir := filepath.Dir(exe)

	candidates := []string{
		filepath.Join(exeDir, "templates"),
		filepath.Join(exeDir, "..", "share", branding.CLIName(), "templates"),
	}
	for _, dir := range candidates {
		if isDir(dir) {
			return filepath.Clean(dir), nil
		}
	}
	return "", fmt.Errorf("searched %s: %w", strings.Join(candidates, ", "), ErrTemplatesNotFound)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
