// Package version provides build-time version information for clustersplit.
package version

import "fmt"

// Set at build time with -ldflags "-X cluster-splitter/internal/version.Version=…".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// String formats the version for the CLI banner.
func String() string {
	return fmt.Sprintf("clustersplit %s (%s)", Version, GitCommit)
}
