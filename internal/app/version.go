package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags, e.g.
// -X github.com/heartmarshall/localize-backend/internal/app.Version=1.0.0.
// Commit and BuildTime fall back to the VCS stamp of the binary when unset.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	Commit, BuildTime = vcsStamp(info.Settings, Commit, BuildTime)
}

// vcsStamp fills commit and built from vcs.revision and vcs.time unless
// they were set explicitly. Revisions are shortened to 12 characters.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit = s.Value[:min(12, len(s.Value))]
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		}
	}
	return commit, built
}

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
