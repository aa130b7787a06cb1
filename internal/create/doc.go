// Package create runs one scaffolding session: it resolves the project name,
// target directory, package name and template (prompting when interactive),
// clears or keeps an existing directory, materializes the template, and
// either installs and starts the project or prints the next steps.
package create
