package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// GitDir is the only entry preserved by EmptyDir and ignored by IsEmpty.
const GitDir = ".git"

// Exists reports whether path exists. Stat errors other than "not exist"
// count as existing so callers do not silently overwrite unreadable paths.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// IsEmpty reports whether dir has no entries, or only a .git entry.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, &FilesystemError{Op: "read directory", Path: dir, Err: err}
	}
	switch len(entries) {
	case 0:
		return true, nil
	case 1:
		return entries[0].Name() == GitDir, nil
	default:
		return false, nil
	}
}

// EmptyDir removes everything inside dir except .git. A missing dir is not
// an error.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &FilesystemError{Op: "empty directory", Path: dir, Err: err}
	}

	for _, entry := range entries {
		if entry.Name() == GitDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return &FilesystemError{Op: "empty directory", Path: dir, Err: err}
		}
	}
	return nil
}

// Copy copies a single file from src to dest, or the whole tree when src is a
// directory.
func Copy(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return &FilesystemError{Op: "copy", Path: src, Dest: dest, Err: err}
	}
	if info.IsDir() {
		return CopyDir(src, dest)
	}

	if err := cp.Copy(src, dest); err != nil {
		return &FilesystemError{Op: "copy", Path: src, Dest: dest, Err: err}
	}
	return nil
}

// CopyDir creates destDir (with parents) and copies every entry of srcDir
// into it, recursing into subdirectories. Existing files in destDir with the
// same names are overwritten; other files are left alone.
func CopyDir(srcDir, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return &FilesystemError{Op: "copy directory", Path: srcDir, Dest: destDir, Err: err}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return &FilesystemError{Op: "copy directory", Path: srcDir, Dest: destDir, Err: err}
	}

	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())
		if err := Copy(srcPath, destPath); err != nil {
			return &FilesystemError{Op: "copy directory", Path: srcDir, Dest: destDir, Err: err}
		}
	}
	return nil
}

// CopyFS writes the contents of fsys under destDir, which must not already
// contain any of the files.
func CopyFS(fsys fs.FS, destDir string) error {
	if err := os.CopyFS(destDir, fsys); err != nil {
		return &FilesystemError{Op: "copy embedded files", Path: destDir, Err: err}
	}
	return nil
}
