// Package buildinfo holds version metadata injected with -ldflags -X.
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

// String renders the version line. Unset ldflags fall back to what the Go
// toolchain recorded in the binary (module version and vcs settings).
func String() string {
	v, c, d := Version, Commit, Date
	if bi, ok := debug.ReadBuildInfo(); ok {
		v, c, d = fromBuildInfo(bi, v, c, d)
	}
	return fmt.Sprintf("cartlab %s (commit=%s, date=%s)", v, c, d)
}

func fromBuildInfo(bi *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "none" && s.Value != "" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if date == "unknown" && s.Value != "" {
				date = s.Value
			}
		}
	}
	return version, commit, date
}
