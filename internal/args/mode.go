package args

import (
	"os"

	"github.com/rolldown/create-rolldown/internal/config"
	"golang.org/x/term"
)

// Mode is the interaction mode of a run.
type Mode int

const (
	ModeNonInteractive Mode = iota
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeNonInteractive:
		return "non-interactive"
	default:
		return "unknown"
	}
}

// Environment is what mode detection looks at besides the flags.
type Environment struct {
	StdinTTY              bool
	StdoutTTY             bool
	CI                    string
	ContinuousIntegration string
}

// IsCI reports whether either CI indicator is exactly "true".
func (e Environment) IsCI() bool {
	return e.CI == "true" || e.ContinuousIntegration == "true"
}

// DetectEnvironment inspects the process's standard streams and cfg.
func DetectEnvironment(cfg *config.Config) Environment {
	env := Environment{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if cfg != nil {
		env.CI = cfg.CI
		env.ContinuousIntegration = cfg.ContinuousIntegration
	}
	return env
}

// ShouldUseInteractiveMode returns the explicit --interactive/--no-interactive
// choice when given. Otherwise the run is interactive only when both stdin and
// stdout are terminals and no CI indicator is set.
func ShouldUseInteractiveMode(opts *Options, env Environment) bool {
	if opts != nil && opts.Interactive.IsSet() {
		return opts.Interactive.Bool()
	}
	return env.StdinTTY && env.StdoutTTY && !env.IsCI()
}

// ResolveMode is ShouldUseInteractiveMode expressed as a Mode.
func ResolveMode(opts *Options, env Environment) Mode {
	if ShouldUseInteractiveMode(opts, env) {
		return ModeInteractive
	}
	return ModeNonInteractive
}
