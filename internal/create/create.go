package create

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolldown/create-rolldown/internal/args"
	"github.com/rolldown/create-rolldown/internal/branding"
	"github.com/rolldown/create-rolldown/internal/fsutil"
	"github.com/rolldown/create-rolldown/internal/logging"
	"github.com/rolldown/create-rolldown/internal/naming"
	"github.com/rolldown/create-rolldown/internal/pkgmanager"
	"github.com/rolldown/create-rolldown/internal/prompt"
	"github.com/rolldown/create-rolldown/internal/runner"
	"github.com/rolldown/create-rolldown/internal/scaffold"
	"github.com/rolldown/create-rolldown/internal/ui"
)

// Creator holds the collaborators of a scaffolding session.
type Creator struct {
	Prompter prompt.Prompter
	Runner   runner.Runner
	Printer  *ui.Printer
	Logger   *slog.Logger

	// Env drives interactive mode detection.
	Env args.Environment
	// Cwd is the directory relative paths resolve against.
	Cwd string
	// TemplatesDir holds the template-<name> directories.
	TemplatesDir string
	// UserAgent is the npm_config_user_agent value.
	UserAgent string
}

// Outcome describes a finished session.
type Outcome struct {
	Root        string
	ProjectName string
	PackageName string
	Template    string
	Agent       pkgmanager.PkgInfo
	Installed   bool
	Files       []string
}

// Run executes the session for opts. prompt.ErrCancelled is returned when the
// user backs out.
func (c *Creator) Run(ctx context.Context, opts *args.Options) (*Outcome, error) {
	log := c.Logger
	if log == nil {
		log = logging.Discard()
	}
	if opts == nil {
		opts = &args.Options{}
	}

	interactive := args.ShouldUseInteractiveMode(opts, c.Env)
	log.Debug("resolved mode", "mode", args.ResolveMode(opts, c.Env))

	if !interactive && !c.Env.StdoutTTY {
		c.Printer.Warn("\nDetected non-interactive environment (AI agent or CI/CD).")
		c.Printer.Warn("For best results, use: %s <project-name> --template <template> --no-interactive\n", branding.CLIName())
	}

	projectName, targetDir, err := c.resolveProjectName(opts, interactive)
	if err != nil {
		return nil, err
	}
	root := c.resolveRoot(targetDir)
	log.Debug("resolved target", "project", projectName, "root", root)

	if err := c.resolveConflict(opts, interactive, targetDir, root); err != nil {
		return nil, err
	}

	packageName := naming.ToValidPackageName(projectName)
	if interactive && !naming.IsValidPackageName(projectName) {
		if packageName, err = c.Prompter.PackageName(packageName); err != nil {
			return nil, err
		}
	}
	log.Debug("resolved package name", "package", packageName)

	template, err := c.resolveTemplate(opts, interactive)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved template", "template", template)

	agent := pkgmanager.Detect(c.UserAgent)
	if warning := pkgmanager.CheckVersion(agent); warning != "" {
		c.Printer.Warn("\n%s", warning)
	}
	log.Debug("resolved package manager", "agent", agent.String())

	shouldInstall := false
	switch {
	case opts.Immediate.IsSet():
		shouldInstall = opts.Immediate.Bool()
	case interactive:
		if shouldInstall, err = c.Prompter.Immediate(agent.Name); err != nil {
			return nil, err
		}
	}

	c.Printer.Info("\nScaffolding project in %s...", root)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, stageErr(ErrCreateDir, err)
	}

	templateDir, err := scaffold.TemplatePath(c.TemplatesDir, template)
	if err != nil {
		return nil, stageErr(ErrCopyTemplate, err)
	}
	result, err := scaffold.CopyTemplate(templateDir, root, projectName, packageName)
	if err != nil {
		return nil, stageErr(ErrCopyTemplate, err)
	}
	for _, w := range result.Warnings {
		c.Printer.Warn("Warning: %s", w)
	}
	log.Debug("materialized template", "files", len(result.Files))

	c.Printer.Success("\n✓ Project created successfully!")

	outcome := &Outcome{
		Root:        root,
		ProjectName: projectName,
		PackageName: packageName,
		Template:    template,
		Agent:       agent,
		Installed:   shouldInstall,
		Files:       result.Files,
	}

	if shouldInstall {
		if err := c.installAndStart(ctx, root, agent.Name); err != nil {
			return outcome, stageErr(ErrInstall, err)
		}
		return outcome, nil
	}

	c.printNextSteps(root, agent.Name)
	return outcome, nil
}

func (c *Creator) resolveProjectName(opts *args.Options, interactive bool) (projectName, targetDir string, err error) {
	positional, _ := opts.ProjectName()
	targetDir = naming.FormatTargetDir(positional)

	if interactive && targetDir == "" {
		projectName, err = c.Prompter.ProjectName(branding.DefaultProjectName())
		if err != nil {
			return "", "", err
		}
		return projectName, naming.FormatTargetDir(projectName), nil
	}

	projectName = targetDir
	if projectName == "" {
		projectName = branding.DefaultProjectName()
	}
	return projectName, projectName, nil
}

func (c *Creator) resolveRoot(targetDir string) string {
	if filepath.IsAbs(targetDir) {
		return filepath.Clean(targetDir)
	}
	return filepath.Join(c.Cwd, targetDir)
}

func (c *Creator) resolveConflict(opts *args.Options, interactive bool, targetDir, root string) error {
	if !fsutil.Exists(root) {
		return nil
	}
	empty, err := fsutil.IsEmpty(root)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", root, err)
	}
	if empty {
		return nil
	}

	if interactive {
		choice, err := c.Prompter.Overwrite(targetDir)
		if err != nil {
			return err
		}
		switch choice {
		case prompt.OverwriteCancel:
			return prompt.ErrCancelled
		case prompt.OverwriteIgnore:
			return nil
		}
		return c.emptyTarget(targetDir, root)
	}

	if opts.Overwrite.Bool() {
		return c.emptyTarget(targetDir, root)
	}

	c.Printer.Notice("\nTarget directory %q is not empty.", targetDir)
	c.Printer.Notice("Use --overwrite flag to overwrite existing files, or choose a different directory.")
	return ErrTargetNotEmpty
}

func (c *Creator) emptyTarget(targetDir, root string) error {
	c.Printer.Info("\nRemoving existing files in %s...", targetDir)
	if err := fsutil.EmptyDir(root); err != nil {
		return stageErr(ErrEmptyDir, err)
	}
	return nil
}

func (c *Creator) resolveTemplate(opts *args.Options, interactive bool) (string, error) {
	template := opts.Template

	if template == "" {
		if !interactive {
			return branding.DefaultTemplate(), nil
		}
		return c.Prompter.Framework(c.frameworkChoices())
	}

	if _, ok := scaffold.LookupFramework(template); ok {
		return template, nil
	}

	if interactive {
		c.Printer.Warn("\n%q isn't a valid template. Please choose from below:\n", template)
		return c.Prompter.Framework(c.frameworkChoices())
	}

	c.Printer.Warn("\nTemplate %q not found. Using default template %q.\n", template, branding.DefaultTemplate())
	return branding.DefaultTemplate(), nil
}

func (c *Creator) frameworkChoices() []prompt.Choice {
	choices := make([]prompt.Choice, len(scaffold.Frameworks))
	for i, fw := range scaffold.Frameworks {
		choices[i] = prompt.Choice{Value: fw.Name, Label: c.Printer.FrameworkLabel(fw)}
	}
	return choices
}

func (c *Creator) installAndStart(ctx context.Context, root, agent string) error {
	c.Printer.Info("\nInstalling dependencies with %s...", agent)
	if err := runner.Install(ctx, c.Runner, root, agent); err != nil {
		return err
	}
	c.Printer.Success("\n✓ Dependencies installed successfully!")

	c.Printer.Info("\nStarting dev server...")
	return runner.Start(ctx, c.Runner, root, agent)
}

func (c *Creator) printNextSteps(root, agent string) {
	c.Printer.Info("\nDone. Now run:\n")

	if rel, err := filepath.Rel(c.Cwd, root); err == nil && rel != "." {
		c.Printer.Info("  cd %s", rel)
	} else if err != nil {
		c.Printer.Info("  cd %s", root)
	}
	c.Printer.Info("  %s", strings.Join(pkgmanager.InstallCommand(agent), " "))
	c.Printer.Info("  %s", strings.Join(pkgmanager.RunCommand(agent, "dev"), " "))
	c.Printer.Println()
}

// IsCancelled reports whether err means the user backed out.
func IsCancelled(err error) bool {
	return errors.Is(err, prompt.ErrCancelled)
}
