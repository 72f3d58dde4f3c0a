// Package buildinfo holds version information injected at build time via ldflags,
// e.g. -X github.com/micmute/micmute/internal/buildinfo.Version=1.2.0.
package buildinfo

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
