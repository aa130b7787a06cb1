package fsutil

import "fmt"

// FilesystemError records a failed copy or remove operation.
type FilesystemError struct {
	Op   string // "copy", "copy directory", "empty directory", "read directory"
	Path string
	Dest string // set for copy operations
	Err  error
}

func (e *FilesystemError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("failed to %s from %s to %s: %v", e.Op, e.Path, e.Dest, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
