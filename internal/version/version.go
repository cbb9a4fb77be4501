// Package version carries build information injected at link time:
//
//	go build -ldflags "-X github.com/arthur-debert/dotlink/internal/version.Version=v1.2.0"
package version

// Build information set by ldflags
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line printed by --version and the version command
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
