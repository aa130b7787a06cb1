package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rolldown/create-rolldown/internal/naming"
)

// ErrCancelled is returned when the user aborts a prompt. It is not a failure.
var ErrCancelled = errors.New("operation cancelled")

// OverwriteChoice is the answer to the non-empty directory question.
type OverwriteChoice int

const (
	// OverwriteRemove empties the directory and continues.
	OverwriteRemove OverwriteChoice = iota
	// OverwriteCancel stops the run.
	OverwriteCancel
	// OverwriteIgnore keeps existing files and copies over them.
	OverwriteIgnore
)

func (c OverwriteChoice) String() string {
	switch c {
	case OverwriteRemove:
		return "remove"
	case OverwriteCancel:
		return "cancel"
	case OverwriteIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Choice is one selectable option. Label is what the user sees and may carry
// terminal styling; Value is returned.
type Choice struct {
	Value string
	Label string
}

// Prompter asks the questions of an interactive run. Every method returns
// ErrCancelled when the user aborts.
type Prompter interface {
	ProjectName(defaultName string) (string, error)
	Overwrite(targetDir string) (OverwriteChoice, error)
	PackageName(defaultName string) (string, error)
	Framework(choices []Choice) (string, error)
	Immediate(agent string) (bool, error)
}

var overwriteOptions = []struct {
	choice OverwriteChoice
	label  string
}{
	{OverwriteRemove, "Remove existing files and continue"},
	{OverwriteCancel, "Cancel operation"},
	{OverwriteIgnore, "Ignore files and continue"},
}

// Question texts.
const (
	projectNameMessage = "Project name:"
	packageNameMessage = "Package name:"
	frameworkMessage   = "Select a framework:"
)

// OverwriteMessage phrases the non-empty directory question for targetDir.
func OverwriteMessage(targetDir string) string {
	display := fmt.Sprintf("Target directory %q", targetDir)
	if targetDir == "." {
		display = "Current directory"
	}
	return display + " is not empty. Please choose how to proceed:"
}

// ImmediateMessage phrases the install-and-start question.
func ImmediateMessage(agent string) string {
	return fmt.Sprintf("Install dependencies and start dev server with %s?", agent)
}

func validateProjectName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Project name cannot be empty")
	}
	return nil
}

func validatePackageName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Package name cannot be empty")
	}
	if !naming.IsValidPackageName(s) {
		return errors.New("Invalid package name (must follow npm naming conventions)")
	}
	return nil
}
