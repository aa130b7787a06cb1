package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gradient endpoints for the banner: orange fading toward magenta.
const (
	gradientStartG = 107
	gradientStepG  = 2
	gradientStepB  = 4
)

// Banner returns text as a per-character orange gradient when colorful is
// set, and unchanged otherwise.
func Banner(w io.Writer, text string, colorful bool) string {
	if !colorful {
		return text
	}

	r := lipgloss.NewRenderer(w)
	var b strings.Builder
	i := 0
	for _, ch := range text {
		if ch == ' ' {
			b.WriteRune(ch)
			continue
		}
		g := gradientStartG - gradientStepG*i
		if g < 0 {
			g = 0
		}
		blue := gradientStepB * i
		if blue > 255 {
			blue = 255
		}
		color := lipgloss.Color(fmt.Sprintf("#ff%02x%02x", g, blue))
		b.WriteString(r.NewStyle().Foreground(color).Render(string(ch)))
		i++
	}
	return b.String()
}

// SupportsColor reports whether the banner should be colored: stdout is a
// terminal and TERM is not "dumb".
func SupportsColor(stdoutTTY bool, term string) bool {
	return stdoutTTY && term != "dumb"
}
