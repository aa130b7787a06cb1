// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed and overlaid on hard defaults, so
// a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	Banner             string `yaml:"banner"`
	DefaultProjectName string `yaml:"default_project_name"`
	DefaultTemplate    string `yaml:"default_template"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "create-rolldown",
			DisplayName:        "Rolldown",
			Description:        "Scaffold a new Rolldown library project",
			Banner:             "Rolldown - Blazing Fast Rust-based bundler for JavaScript",
			DefaultProjectName: "rolldown-project",
			DefaultTemplate:    "vanilla",
			HomeDir:            ".create-rolldown",
			EnvPrefix:          "CREATE_ROLLDOWN",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-rolldown").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Banner returns the one-line banner printed at startup.
func Banner() string { load(); return defaults.Banner }

// DefaultProjectName is used when no project name is given.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// DefaultTemplate is the framework used when none is selected.
func DefaultTemplate() string { load(); return defaults.DefaultTemplate }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "CREATE_ROLLDOWN_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
