// Package prompt asks the user the questions of an interactive run. The
// Prompter interface lets the create flow run against a scripted responder in
// tests; Survey renders real terminal prompts and Line falls back to numbered
// menus on plain streams.
package prompt
