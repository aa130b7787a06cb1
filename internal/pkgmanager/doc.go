// Package pkgmanager detects the package manager that launched the CLI (from
// npm_config_user_agent) and maps it to install and run command vectors.
package pkgmanager
