// internal/version/version.go
package version

import "fmt"

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
