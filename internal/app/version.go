package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/prize2pride-backend/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary. Commit and build time fall back
// to the VCS stamp the Go toolchain embeds when ldflags did not set them.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fillFromVCS(info.Settings, commit, built)
	}
	return formatVersion(Version, commit, built)
}

func fillFromVCS(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "" {
				built = s.Value
			}
		}
	}
	return commit, built
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
