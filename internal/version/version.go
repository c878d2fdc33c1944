// Package version holds build information injected at release time.
package version

// Set via -ldflags at build time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
