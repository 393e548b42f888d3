// Package version provides build information for the mdmerge CLI.
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X mdmerge/pkg/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains the build information of the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the information on one line, e.g.
// mdmerge version 1.2.3 (commit: abcdefg) built at 2026-10-15T09:00:00Z with go1.24.0 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"mdmerge version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
