// Package version carries build metadata stamped via -ldflags.
package version

import "fmt"

var (
	// Version is the semantic version, set at build time.
	Version = "dev"

	// Commit is the git commit hash, set at build time.
	Commit = "unknown"

	// Date is the build date, set at build time.
	Date = "unknown"
)

// String returns the full version string.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
