// Package version reports the build version of holdtrack.
package version

import "runtime/debug"

// Set by -ldflags "-X github.com/rshade/holdtrack/pkg/version.version=...".
var (
	version   = "" //nolint:gochecknoglobals // Set at build time
	gitCommit = "" //nolint:gochecknoglobals // Set at build time
	buildDate = "" //nolint:gochecknoglobals // Set at build time
)

const devVersion = "dev"

// GetVersion returns the release version, the module version recorded by
// go install, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}
