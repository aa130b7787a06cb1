package scaffold

import (
	"fmt"
	"path/filepath"
)

// Framework is one selectable template. Name doubles as the template
// directory suffix (template-<name>). Color is a semantic color name that
// the presentation layer maps to a terminal style.
type Framework struct {
	Name        string
	Display     string
	Description string
	Color       string
}

// Frameworks is the ordered registry of supported templates.
var Frameworks = []Framework{
	{Name: "vanilla", Display: "Vanilla", Description: "Vanilla TypeScript library (default)", Color: "yellow"},
	{Name: "react", Display: "React", Description: "React library with TypeScript", Color: "cyan"},
	{Name: "vue", Display: "Vue", Description: "Vue library with TypeScript", Color: "green"},
	{Name: "solid", Display: "Solid", Description: "SolidJS library with TypeScript", Color: "blue"},
	{Name: "svelte", Display: "Svelte", Description: "Svelte library with TypeScript", Color: "red"},
}

// Templates returns the framework names in registry order.
func Templates() []string {
	names := make([]string, len(Frameworks))
	for i, f := range Frameworks {
		names[i] = f.Name
	}
	return names
}

// LookupFramework finds a framework by name.
func LookupFramework(name string) (Framework, bool) {
	for _, f := range Frameworks {
		if f.Name == name {
			return f, true
		}
	}
	return Framework{}, false
}

// TemplateDir returns the directory name holding the framework's template.
func (f Framework) TemplateDir() string {
	return "template-" + f.Name
}

// Path returns the framework's template directory under templatesRoot.
func (f Framework) Path(templatesRoot string) string {
	return filepath.Join(templatesRoot, f.TemplateDir())
}

// TemplatePath returns the template directory for a registered framework
// name. Names outside the registry are rejected with ErrUnknownTemplate.
func TemplatePath(templatesRoot, name string) (string, error) {
	f, ok := LookupFramework(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return f.Path(templatesRoot), nil
}

// RenameFiles maps template file names to their names in the project. Files
// such as .gitignore are stored under a placeholder so package managers do
// not act on them inside the template tree.
var RenameFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// DestName returns the project-side name of a top-level template file.
func DestName(name string) string {
	if renamed, ok := RenameFiles[name]; ok {
		return renamed
	}
	return name
}
