package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/rolldown/create-rolldown/internal/pkgmanager"
)

// Runner executes a command vector in dir and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// CommandExecutionError reports a command that could not be spawned or that
// exited with a non-zero status. ExitCode is -1 when the process never ran.
type CommandExecutionError struct {
	Name     string
	Args     []string
	ExitCode int
	Err      error
}

func (e *CommandExecutionError) Error() string {
	cmd := strings.Join(append([]string{e.Name}, e.Args...), " ")
	if e.ExitCode >= 0 {
		return fmt.Sprintf("Command failed with exit code %d: %s", e.ExitCode, cmd)
	}
	return fmt.Sprintf("Failed to execute command: %s\n%v", cmd, e.Err)
}

func (e *CommandExecutionError) Unwrap() error { return e.Err }

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves argv[0] on PATH and runs it with dir as the working directory.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	name, args := argv[0], argv[1:]

	bin, err := exec.LookPath(name)
	if err != nil {
		return &CommandExecutionError{Name: name, Args: args, ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandExecutionError{Name: name, Args: args, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &CommandExecutionError{Name: name, Args: args, ExitCode: -1, Err: err}
	}
	return nil
}

// Invocation is one command recorded by DryRunner.
type Invocation struct {
	Dir  string
	Argv []string
}

// DryRunner records commands without spawning anything.
type DryRunner struct {
	mu    sync.Mutex
	calls []Invocation
}

// Run records the command and returns nil.
func (r *DryRunner) Run(_ context.Context, dir string, argv []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Invocation{Dir: dir, Argv: append([]string(nil), argv...)})
	return nil
}

// Calls returns a copy of the recorded invocations in order.
func (r *DryRunner) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}

// Install runs the agent's dependency install command in root.
func Install(ctx context.Context, r Runner, root, agent string) error {
	if err := r.Run(ctx, root, pkgmanager.InstallCommand(agent)); err != nil {
		return fmt.Errorf("installing dependencies with %s: %w", agent, err)
	}
	return nil
}

// Start runs the "dev" script with the agent in root.
func Start(ctx context.Context, r Runner, root, agent string) error {
	if err := r.Run(ctx, root, pkgmanager.RunCommand(agent, "dev")); err != nil {
		return fmt.Errorf("starting dev server with %s: %w", agent, err)
	}
	return nil
}
