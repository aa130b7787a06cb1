// Package ui renders user-facing output: the startup banner, colored status
// lines, framework labels, and the help screen. Styling goes through a
// lipgloss renderer bound to the destination writer, so output to a pipe or
// file stays plain.
package ui
