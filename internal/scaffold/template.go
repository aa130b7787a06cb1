package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/rolldown/create-rolldown/internal/fsutil"
	"github.com/rolldown/create-rolldown/internal/pkgjson"
)

// Result holds the outcome of a materialization.
type Result struct {
	Root     string
	Files    []string
	Warnings []string
}

// titlePattern matches the first <title> element on a single line.
var titlePattern = regexp.MustCompile(`<title>.*?</title>`)

// htmlEntryPoints are rewritten with the project name when present.
var htmlEntryPoints = []string{
	"index.html",
	filepath.Join("playground", "index.html"),
}

// CopyTemplate copies templateDir into root, renaming placeholder files,
// then sets the package.json name to packageName and the HTML titles to
// projectName.
func CopyTemplate(templateDir, root, projectName, packageName string) (*Result, error) {
	info, err := os.Stat(templateDir)
	if err != nil || !info.IsDir() {
		return nil, &TemplateNotFoundError{Dir: templateDir}
	}

	result, err := materialize(templateDir, root, projectName, packageName)
	if err != nil {
		return nil, &TemplateCopyError{Err: err}
	}
	return result, nil
}

func materialize(templateDir, root, projectName, packageName string) (*Result, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}

	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", templateDir, err)
	}

	result := &Result{Root: root}

	for _, entry := range entries {
		src := filepath.Join(templateDir, entry.Name())
		if entry.IsDir() {
			if err := fsutil.CopyDir(src, filepath.Join(root, entry.Name())); err != nil {
				return nil, err
			}
			continue
		}
		if err := fsutil.Copy(src, filepath.Join(root, DestName(entry.Name()))); err != nil {
			return nil, err
		}
	}

	pkgPath := filepath.Join(root, pkgjson.FileName)
	if fsutil.Exists(pkgPath) {
		if err := pkgjson.SetNameFile(pkgPath, packageName); err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, validatePackageJSON(pkgPath)...)
	}

	for _, rel := range htmlEntryPoints {
		path := filepath.Join(root, rel)
		if !fsutil.Exists(path) {
			continue
		}
		if err := replaceTitle(path, projectName); err != nil {
			return nil, err
		}
	}

	files, err := listFiles(templateDir)
	if err != nil {
		return nil, err
	}
	result.Files = files

	return result, nil
}

// replaceTitle rewrites the inner text of the first <title> element. The
// title is inserted verbatim.
func replaceTitle(path, title string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	loc := titlePattern.FindIndex(data)
	if loc == nil {
		return nil
	}

	out := make([]byte, 0, len(data)+len(title))
	out = append(out, data[:loc[0]]...)
	out = append(out, "<title>"+title+"</title>"...)
	out = append(out, data[loc[1]:]...)

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func validatePackageJSON(path string) []string {
	res, err := pkgjson.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", pkgjson.FileName, err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, pkgjson.FileName+": "+issue.String())
	}
	return warnings
}

// listFiles returns the project-relative paths of every file the template
// produces, sorted.
func listFiles(templateDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}
		if filepath.Dir(rel) == "." {
			rel = DestName(rel)
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateDir, err)
	}
	sort.Strings(files)
	return files, nil
}
