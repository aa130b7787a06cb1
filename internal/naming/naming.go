package naming

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultPackageName is returned by ToValidPackageName when nothing usable is
// left of the input.
const DefaultPackageName = "package"

var (
	packageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	leadingDotOrUnder  = regexp.MustCompile(`^[._]`)
	invalidCharRun     = regexp.MustCompile(`[^a-z0-9-~]+`)
)

// FormatTargetDir trims surrounding whitespace and strips trailing path
// separators, e.g. "  my-app// " -> "my-app".
//
// Whitespace uncovered by removing separators ("a/ /") is stripped in the same
// pass so the function is idempotent.
func FormatTargetDir(targetDir string) string {
	return strings.TrimRightFunc(strings.TrimSpace(targetDir), func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
}

// IsValidPackageName reports whether name follows the npm package name
// grammar, with an optional "@scope/" prefix.
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// ToValidPackageName converts an arbitrary project name into a valid npm
// package name.
func ToValidPackageName(name string) string {
	converted := strings.ToLower(strings.TrimSpace(name))
	converted = whitespaceRun.ReplaceAllString(converted, "-")
	converted = leadingDotOrUnder.ReplaceAllString(converted, "")
	converted = invalidCharRun.ReplaceAllString(converted, "-")

	if converted == "" {
		return DefaultPackageName
	}
	return converted
}
