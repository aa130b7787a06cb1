// Package templates bundles the template-<name> trees into the binary so an
// installed executable can scaffold without a templates directory on disk.
package templates

import "embed"

// FS holds one template-<name> directory per framework. The all: prefix keeps
// placeholder files such as _gitignore.
//
//go:embed all:template-vanilla all:template-react all:template-vue all:template-solid all:template-svelte
var FS embed.FS
