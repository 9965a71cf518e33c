// Package buildinfo carries version metadata set with -ldflags at release time.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const project = "github.com/aalvaropc/aoc"

func String() string {
	return fmt.Sprintf("aoc %s (commit=%s, date=%s)", version(), Commit, Date)
}

// UserAgent identifies the tool to remote services.
func UserAgent() string {
	return fmt.Sprintf("%s@%s", project, version())
}

// version falls back to the module version when installed with go install.
func version() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}
