// Package misc keeps build time identification of the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X ttc/misc.version=... -X ttc/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
	appName = "ttc"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns hash linked in at build time or, when absent, the
// vcs revision recorded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if len(rev) == 0 {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev + dirty
}
