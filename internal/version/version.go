package version

import "fmt"

// Version is the docnav release. Set via ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/docnav/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
