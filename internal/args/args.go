package args

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Options is the parsed command line.
type Options struct {
	// Positionals are the non-flag arguments in order; the first one is the
	// project name.
	Positionals []string
	Template    string
	Help        TriState
	Overwrite   TriState
	Immediate   TriState
	Interactive TriState
}

// ProjectName returns the first positional argument, if any.
func (o *Options) ProjectName() (string, bool) {
	if len(o.Positionals) == 0 {
		return "", false
	}
	return o.Positionals[0], true
}

// Flag names.
const (
	FlagTemplate    = "template"
	FlagHelp        = "help"
	FlagOverwrite   = "overwrite"
	FlagImmediate   = "immediate"
	FlagInteractive = "interactive"
)

// Bind registers the CLI flags on fs, writing into opts.
func Bind(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Template, FlagTemplate, "t", "", "Use a specific template")
	addTriState(fs, &opts.Help, FlagHelp, "h",
		"Display this help message",
		"Do not display the help message")
	addTriState(fs, &opts.Overwrite, FlagOverwrite, "",
		"Overwrite existing files in target directory",
		"Keep existing files in target directory")
	_ = fs.MarkHidden("no-" + FlagHelp)
	_ = fs.MarkHidden("no-" + FlagOverwrite)
	addTriState(fs, &opts.Immediate, FlagImmediate, "i",
		"Install dependencies and start dev server immediately",
		"Skip dependency installation")
	addTriState(fs, &opts.Interactive, FlagInteractive, "",
		"Force interactive mode",
		"Force non-interactive mode")
}

// Normalize rewrites a --template or -t that has no value (last argument, or
// followed by another flag) into an explicit empty value. Arguments after
// "--" are left alone.
func Normalize(argv []string) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		if a == "--" {
			return append(out, argv[i:]...)
		}
		if a == "--"+FlagTemplate || a == "-t" {
			if i+1 == len(argv) || strings.HasPrefix(argv[i+1], "-") {
				out = append(out, "--"+FlagTemplate+"=")
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Parse parses argv (without the program name). Unknown flags are skipped.
func Parse(argv []string) (*Options, error) {
	opts := &Options{}
	fs := pflag.NewFlagSet("create-rolldown", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	Bind(fs, opts)

	if err := fs.Parse(Normalize(argv)); err != nil {
		return nil, err
	}
	opts.Positionals = append([]string{}, fs.Args()...)
	return opts, nil
}
