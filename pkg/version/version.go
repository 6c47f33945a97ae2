// Package version holds build-time version information.
package version

// Set by the build system via -ldflags.
var (
	// Version is the semantic version of this build, e.g. v0.3.0.
	Version = "dev"
	// GitCommit is the git commit hash this binary was built from.
	GitCommit = "unknown"
)
