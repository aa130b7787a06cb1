package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/pflag"

	"github.com/rolldown/create-rolldown/internal/scaffold"
)

// helpColumnWidth aligns descriptions in the option and template lists.
const helpColumnWidth = 28

// helpFlags lists the options in display order with their synopsis.
var helpFlags = []struct {
	synopsis string
	name     string
}{
	{"-t, --template <name>", "template"},
	{"-h, --help", "help"},
	{"--overwrite", "overwrite"},
	{"-i, --immediate", "immediate"},
	{"--no-immediate", "no-immediate"},
	{"--interactive", "interactive"},
	{"--no-interactive", "no-interactive"},
}

var helpExamples = []string{
	"npm create rolldown",
	"npm create rolldown my-lib",
	"npm create rolldown my-lib --template react",
	"npm create rolldown my-lib -t vue --immediate",
	"npm create rolldown my-lib --no-interactive --template solid",
}

// Help writes the usage screen. Option descriptions come from fs.
func Help(w io.Writer, cliName string, fs *pflag.FlagSet, frameworks []scaffold.Framework) {
	fmt.Fprintf(w, "\nUsage: %s [project-name] [options]\n\n", cliName)

	fmt.Fprintln(w, "Options:")
	var options [][2]string
	for _, f := range helpFlags {
		usage := ""
		if flag := fs.Lookup(f.name); flag != nil {
			usage = flag.Usage
		}
		options = append(options, [2]string{f.synopsis, usage})
	}
	fmt.Fprint(w, twoColumns(options))

	fmt.Fprintln(w, "\nAvailable templates:")
	var templates [][2]string
	for _, fw := range frameworks {
		templates = append(templates, [2]string{fw.Name, fw.Description})
	}
	fmt.Fprint(w, twoColumns(templates))

	fmt.Fprintln(w, "\nExamples:")
	for _, ex := range helpExamples {
		fmt.Fprintf(w, "  $ %s\n", ex)
	}
	fmt.Fprintln(w)
}

// twoColumns renders rows as an indented, borderless two-column list.
func twoColumns(rows [][2]string) string {
	tw := table.NewWriter()
	for _, r := range rows {
		tw.AppendRow(table.Row{"  " + r[0], r[1]})
	}

	style := table.StyleDefault
	style.Options = table.Options{}
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = ""
	tw.SetStyle(style)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMin: helpColumnWidth},
		{Number: 2, Align: text.AlignLeft},
	})

	var b strings.Builder
	for _, line := range strings.Split(tw.Render(), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return b.String()
}
