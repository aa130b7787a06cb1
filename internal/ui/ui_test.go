package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolldown/create-rolldown/internal/args"
	"github.com/rolldown/create-rolldown/internal/scaffold"
)

func TestHelp_Layout(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	args.Bind(fs, &args.Options{})

	var buf bytes.Buffer
	Help(&buf, "create-rolldown", fs, scaffold.Frameworks)
	out := buf.String()

	assert.Contains(t, out, "Usage: create-rolldown [project-name] [options]")
	for _, line := range []string{
		"  -t, --template <name>     Use a specific template",
		"  -h, --help                Display this help message",
		"  --overwrite               Overwrite existing files in target directory",
		"  -i, --immediate           Install dependencies and start dev server immediately",
		"  --no-immediate            Skip dependency installation",
		"  --interactive             Force interactive mode",
		"  --no-interactive          Force non-interactive mode",
		"  vanilla                   Vanilla TypeScript library (default)",
		"  svelte                    Svelte library with TypeScript",
		"  $ npm create rolldown my-lib -t vue --immediate",
	} {
		assert.Contains(t, out, line+"\n")
	}

	for _, l := range strings.Split(out, "\n") {
		assert.Equal(t, strings.TrimRight(l, " "), l, "trailing whitespace in %q", l)
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "Rolldown - fast", Banner(&buf, "Rolldown - fast", false))

	colored := Banner(&buf, "Rolldown", true)
	require.NotEmpty(t, colored)
	assert.Equal(t, "Rolldown", stripANSI(colored))
}

func TestSupportsColor(t *testing.T) {
	assert.True(t, SupportsColor(true, "xterm-256color"))
	assert.False(t, SupportsColor(true, "dumb"))
	assert.False(t, SupportsColor(false, "xterm"))
}

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Info("Scaffolding project in %s...", "/tmp/app")
	p.Success("✓ Project created successfully!")
	p.Error("Error: %s", "boom")

	assert.Equal(t, "Scaffolding project in /tmp/app...\n✓ Project created successfully!\n", out.String())
	assert.Equal(t, "Error: boom\n", errOut.String())
}

func TestFrameworkLabel(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{})
	fw, _ := scaffold.LookupFramework("react")
	assert.Equal(t, "React", stripANSI(p.FrameworkLabel(fw)))
	assert.Equal(t, "Custom", p.FrameworkLabel(scaffold.Framework{Display: "Custom", Color: "mauve"}))
}

// ─── Test Helpers ───────────────────────────────────────────────

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestPrinter_KeepsBlankLinesUnstyled(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{})

	p.Info("\nDone. Now run:\n")
	assert.Equal(t, "\nDone. Now run:\n\n", out.String())
}
