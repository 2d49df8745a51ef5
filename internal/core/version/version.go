// Package version reports build metadata stamped in with -ldflags
package version

// BuildInfo holds version information about a worthit binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
// Set via -ldflags "-X 'worthit/internal/core/version.version=v0.1.0'
// -X 'worthit/internal/core/version.commit=abcd' -X 'worthit/internal/core/version.date=2026-10-01'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String is the short form printed by --version
func (b BuildInfo) String() string {
	return b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
