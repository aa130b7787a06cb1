package create

import "errors"

// ErrTargetNotEmpty is returned in non-interactive mode when the target
// directory has files and --overwrite was not given. Nothing is modified.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// Stage sentinels. Their text is the headline the CLI prints for a failure in
// that stage.
var (
	ErrEmptyDir     = errors.New("Failed to remove existing files")
	ErrCreateDir    = errors.New("Failed to create project directory")
	ErrCopyTemplate = errors.New("Failed to copy template files")
	ErrInstall      = errors.New("Failed to install dependencies or start server")
)

// StageError ties a failure to the stage it happened in. It matches both the
// stage sentinel and the cause with errors.Is.
type StageError struct {
	Stage error
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage.Error() + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() []error { return []error{e.Stage, e.Err} }

func stageErr(stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
