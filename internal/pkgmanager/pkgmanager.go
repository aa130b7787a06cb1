package pkgmanager

import (
	"strings"
)

// Agent names with dedicated command table entries.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
	Deno = "deno"
)

// DefaultAgent is used when the user agent is missing or unrecognized.
const DefaultAgent = NPM

// PkgInfo identifies a package manager, e.g. {Name: "pnpm", Version: "7.14.0"}.
type PkgInfo struct {
	Name    string
	Version string
}

var installCommands = map[string][]string{
	NPM:  {"npm", "install"},
	PNPM: {"pnpm", "install"},
	Yarn: {"yarn"},
	Bun:  {"bun", "install"},
	Deno: {"deno", "install"},
}

// runPrefixes are completed with the script name.
var runPrefixes = map[string][]string{
	NPM:  {"npm", "run"},
	PNPM: {"pnpm"},
	Yarn: {"yarn"},
	Bun:  {"bun", "run"},
	Deno: {"deno", "task"},
}

// FromUserAgent parses the first token of a user agent string such as
// "pnpm/7.14.0 npm/? node/v18.12.0 darwin arm64". It reports false when the
// string is empty or the token is not exactly "name/version".
func FromUserAgent(userAgent string) (PkgInfo, bool) {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return PkgInfo{}, false
	}

	parts := strings.Split(fields[0], "/")
	if len(parts) != 2 {
		return PkgInfo{}, false
	}
	return PkgInfo{Name: parts[0], Version: parts[1]}, true
}

// Detect returns the agent described by userAgent, falling back to npm.
func Detect(userAgent string) PkgInfo {
	if info, ok := FromUserAgent(userAgent); ok && info.Name != "" {
		return info
	}
	return PkgInfo{Name: DefaultAgent}
}

// Known reports whether agent has its own command table entry.
func Known(agent string) bool {
	_, ok := installCommands[agent]
	return ok
}

// InstallCommand returns the dependency install command for agent. Unknown
// agents get the npm command.
func InstallCommand(agent string) []string {
	cmd, ok := installCommands[agent]
	if !ok {
		cmd = installCommands[DefaultAgent]
	}
	return append([]string(nil), cmd...)
}

// RunCommand returns the command that runs script with agent. Unknown agents
// get the npm command.
func RunCommand(agent, script string) []string {
	prefix, ok := runPrefixes[agent]
	if !ok {
		prefix = runPrefixes[DefaultAgent]
	}
	cmd := make([]string, 0, len(prefix)+1)
	cmd = append(cmd, prefix...)
	return append(cmd, script)
}
