// Package version reports build information.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the version of the CLI
	Version = "0.1.0"
	// BuildDate is the build date
	BuildDate = "unknown"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// Info holds version information
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one line version string
func (i Info) String() string {
	return fmt.Sprintf("comfort %s (%s %s)", i.Version, i.Platform, i.GoVersion)
}

// Rows returns the fields as label/value pairs for tabular output.
func (i Info) Rows() [][]string {
	return [][]string{
		{"Version", i.Version},
		{"Build Date", i.BuildDate},
		{"Git Commit", i.GitCommit},
		{"Platform", i.Platform},
		{"Go Version", i.GoVersion},
	}
}
