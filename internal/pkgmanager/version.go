package pkgmanager

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// minimumVersions lists agents whose install command changed meaning in a
// given release.
var minimumVersions = map[string]struct {
	version string
	reason  string
}{
	Deno: {"2.0.0", "`deno install` installs scripts globally before Deno 2"},
}

// Semver parses Version, tolerating a leading "v".
func (p PkgInfo) Semver() (*semver.Version, error) {
	return parseSemver(p.Version)
}

// String renders "name@version", or just the name when the version is unknown.
func (p PkgInfo) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// CheckVersion returns a warning when info is older than the release its
// install command needs. Unknown agents and unparseable versions yield "".
func CheckVersion(info PkgInfo) string {
	minimum, ok := minimumVersions[info.Name]
	if !ok {
		return ""
	}

	current, err := info.Semver()
	if err != nil {
		return ""
	}
	required := semver.MustParse(minimum.version)
	if !current.LessThan(required) {
		return ""
	}

	return fmt.Sprintf("%s %s is older than %s: %s", info.Name, current, required, minimum.reason)
}

func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
