package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rolldown/create-rolldown/internal/args"
	"github.com/rolldown/create-rolldown/internal/branding"
	"github.com/rolldown/create-rolldown/internal/config"
	"github.com/rolldown/create-rolldown/internal/create"
	"github.com/rolldown/create-rolldown/internal/fsutil"
	"github.com/rolldown/create-rolldown/internal/logging"
	"github.com/rolldown/create-rolldown/internal/prompt"
	"github.com/rolldown/create-rolldown/internal/runner"
	"github.com/rolldown/create-rolldown/internal/scaffold"
	"github.com/rolldown/create-rolldown/internal/ui"
	"github.com/rolldown/create-rolldown/templates"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("reported")

// App wires the command to its streams and environment.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Version string
	Commit  string
	Date    string

	// DetectEnv and Getwd default to the real process state.
	DetectEnv func(*config.Config) args.Environment
	Getwd     func() (string, error)
	// Prompter, when set, replaces the terminal prompter.
	Prompter prompt.Prompter
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &App{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	return app.Run(ctx, os.Args[1:])
}

// ExitSuppressed reports whether test mode asks the process not to exit.
func ExitSuppressed() bool {
	cfg, err := config.Load()
	return err == nil && cfg.TestMode
}

// Run parses argv and executes one session. A non-nil error means the
// process should exit with status 1; its message has already been printed.
func (a *App) Run(ctx context.Context, argv []string) error {
	printer := ui.NewPrinter(a.Out, a.Err)

	cmd := a.Command()
	cmd.SetArgs(args.Normalize(argv))
	err := cmd.ExecuteContext(ctx)
	if err == nil || errors.Is(err, errReported) {
		return err
	}
	printer.Error("Error: %v", err)
	return err
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	opts := &args.Options{}

	cmd := &cobra.Command{
		Use:           branding.CLIName() + " [project-name]",
		Short:         branding.Description(),
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", a.Version, a.Commit, a.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, positionals []string) error {
			opts.Positionals = append([]string{}, positionals...)
			return a.create(cmd.Context(), opts)
		},
	}
	cmd.SetIn(a.In)
	cmd.SetOut(a.Out)
	cmd.SetErr(a.Err)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	args.Bind(cmd.Flags(), opts)

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		cfg, env := a.loadEnvironment()
		a.printBanner(cfg, env)
		ui.Help(c.OutOrStdout(), branding.CLIName(), c.Flags(), scaffold.Frameworks)
	})

	return cmd
}

func (a *App) create(ctx context.Context, opts *args.Options) error {
	printer := ui.NewPrinter(a.Out, a.Err)

	cfg, err := config.Load()
	if err != nil {
		printer.Error("\n✗ An unexpected error occurred: %v", err)
		return errReported
	}
	env := a.detect(cfg)
	a.printBanner(cfg, env)

	log := logging.New(a.Err, cfg.LogLevel)

	templatesDir, cleanup, err := resolveTemplates(cfg, log)
	if err != nil {
		printer.Error("\n✗ An unexpected error occurred: %v", err)
		return errReported
	}
	defer cleanup()

	getwd := a.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	cwd, err := getwd()
	if err != nil {
		printer.Error("\n✗ An unexpected error occurred: %v", err)
		return errReported
	}

	creator := &create.Creator{
		Prompter:     a.prompter(env),
		Runner:       a.runner(cfg),
		Printer:      printer,
		Logger:       log,
		Env:          env,
		Cwd:          cwd,
		TemplatesDir: templatesDir,
		UserAgent:    cfg.UserAgent,
	}

	_, err = creator.Run(ctx, opts)
	return report(printer, err)
}

// resolveTemplates locates the template trees on disk. Without an explicit
// override and with nothing next to the executable, the bundled copy is
// unpacked into a temporary directory that cleanup removes.
func resolveTemplates(cfg *config.Config, log *slog.Logger) (dir string, cleanup func(), err error) {
	dir, err = cfg.ResolveTemplatesDir()
	if err == nil || cfg.TemplatesDir != "" || !errors.Is(err, config.ErrTemplatesNotFound) {
		return dir, func() {}, err
	}
	log.Debug("using bundled templates", "reason", err)

	tmp, err := os.MkdirTemp("", branding.CLIName()+"-templates-")
	if err != nil {
		return "", nil, fmt.Errorf("unpacking bundled templates: %w", err)
	}
	cleanup = func() { _ = os.RemoveAll(tmp) }
	if err := fsutil.CopyFS(templates.FS, tmp); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("unpacking bundled templates: %w", err)
	}
	return tmp, cleanup, nil
}

// report prints err the way the user should see it and returns the error
// that decides the exit status.
func report(printer *ui.Printer, err error) error {
	if err == nil {
		return nil
	}

	if create.IsCancelled(err) {
		printer.Notice("\nOperation cancelled")
		return nil
	}
	if errors.Is(err, create.ErrTargetNotEmpty) {
		return errReported
	}

	var stage *create.StageError
	if errors.As(err, &stage) {
		printer.Error("\n✗ %s", stage.Stage)
		printer.Error("Error: %v", stage.Err)
		return errReported
	}

	printer.Error("\n✗ An unexpected error occurred: %v", err)
	return errReported
}

func (a *App) loadEnvironment() (*config.Config, args.Environment) {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	return cfg, a.detect(cfg)
}

func (a *App) detect(cfg *config.Config) args.Environment {
	if a.DetectEnv != nil {
		return a.DetectEnv(cfg)
	}
	return args.DetectEnvironment(cfg)
}

func (a *App) printBanner(cfg *config.Config, env args.Environment) {
	colorful := ui.SupportsColor(env.StdoutTTY, cfg.Term)
	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, ui.Banner(a.Out, branding.Banner(), colorful))
	fmt.Fprintln(a.Out)
}

func (a *App) prompter(env args.Environment) prompt.Prompter {
	if a.Prompter != nil {
		return a.Prompter
	}
	in, inOK := a.In.(terminal.FileReader)
	out, outOK := a.Out.(terminal.FileWriter)
	if env.StdinTTY && env.StdoutTTY && inOK && outOK {
		return &prompt.Survey{In: in, Out: out, Err: a.Err}
	}
	return prompt.NewLine(a.In, a.Out)
}

func (a *App) runner(cfg *config.Config) runner.Runner {
	if cfg.TestMode {
		return &runner.DryRunner{}
	}
	return &runner.ExecRunner{Stdin: a.In, Stdout: a.Out, Stderr: a.Err}
}
