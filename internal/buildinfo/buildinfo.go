// Package buildinfo carries identifiers stamped at build time via -ldflags.
package buildinfo

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the short VCS hash.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// Short returns a compact identifier for window titles and banners.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns the full identifier for startup logs.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
