// Package buildinfo carries version details stamped at build time.
package buildinfo

// Set with -ldflags "-X .../buildinfo.Version=..." by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
