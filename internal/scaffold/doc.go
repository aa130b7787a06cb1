// Package scaffold materializes a project from a template directory. It holds
// the fixed registry of supported frameworks, copies the template tree into
// the target root, and rewrites the package name and HTML titles in the copy.
package scaffold
