package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rolldown/create-rolldown/internal/scaffold"
)

// Printer writes styled lines to the standard output and error streams.
type Printer struct {
	Out io.Writer
	Err io.Writer

	outStyles styles
	errStyles styles
}

type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// NewPrinter returns a Printer for out and errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		Out:       out,
		Err:       errOut,
		outStyles: newStyles(out),
		errStyles: newStyles(errOut),
	}
}

// Println writes an unstyled line to Out.
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.Out, a...)
}

// Info writes a cyan line to Out.
func (p *Printer) Info(format string, a ...interface{}) {
	fmt.Fprintln(p.Out, render(p.outStyles.info, fmt.Sprintf(format, a...)))
}

// Success writes a green line to Out.
func (p *Printer) Success(format string, a ...interface{}) {
	fmt.Fprintln(p.Out, render(p.outStyles.success, fmt.Sprintf(format, a...)))
}

// Warn writes a yellow line to Out.
func (p *Printer) Warn(format string, a ...interface{}) {
	fmt.Fprintln(p.Out, render(p.outStyles.warn, fmt.Sprintf(format, a...)))
}

// Notice writes a red line to Out. Used for outcomes that are reported on
// stdout, such as a cancelled run or a refused overwrite.
func (p *Printer) Notice(format string, a ...interface{}) {
	fmt.Fprintln(p.Out, render(p.outStyles.fail, fmt.Sprintf(format, a...)))
}

// Error writes a red line to Err.
func (p *Printer) Error(format string, a ...interface{}) {
	fmt.Fprintln(p.Err, render(p.errStyles.fail, fmt.Sprintf(format, a...)))
}

// render styles s while keeping its leading and trailing blank lines
// unstyled.
func render(style lipgloss.Style, s string) string {
	core := strings.Trim(s, "\n")
	if core == "" {
		return s
	}
	lead := len(s) - len(strings.TrimLeft(s, "\n"))
	trail := len(s) - len(strings.TrimRight(s, "\n"))
	return s[:lead] + style.Render(core) + s[len(s)-trail:]
}

var frameworkColors = map[string]lipgloss.Color{
	"yellow": lipgloss.Color("3"),
	"cyan":   lipgloss.Color("6"),
	"green":  lipgloss.Color("2"),
	"blue":   lipgloss.Color("4"),
	"red":    lipgloss.Color("1"),
}

// FrameworkLabel renders the framework's display name in its color.
func (p *Printer) FrameworkLabel(fw scaffold.Framework) string {
	color, ok := frameworkColors[fw.Color]
	if !ok {
		return fw.Display
	}
	return lipgloss.NewRenderer(p.Out).NewStyle().Foreground(color).Render(fw.Display)
}
