// Package version holds build metadata reported by `langpages --version`.
package version

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/langpages/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
