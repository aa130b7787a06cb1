package scaffold

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned for template names outside Frameworks.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateNotFoundError is returned before anything is written when the
// template directory does not exist.
type TemplateNotFoundError struct {
	Dir string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("Template directory not found: %s", e.Dir)
}

// TemplateCopyError wraps any failure that happens while materializing.
type TemplateCopyError struct {
	Err error
}

func (e *TemplateCopyError) Error() string {
	return fmt.Sprintf("Failed to copy template: %v", e.Err)
}

func (e *TemplateCopyError) Unwrap() error { return e.Err }
