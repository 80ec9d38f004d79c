// Package version holds build information, overridden with -ldflags "-X".
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the build information for log and usage lines.
func String() string {
	if GitCommit == "unknown" {
		return "v" + Version
	}
	return fmt.Sprintf("v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
