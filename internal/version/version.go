// Package version reports which build of distinct is running.
//
// Release builds stamp Version, Commit and Date with ldflags, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/distinct/internal/version.Version=v1.0.0" ./cmd/distinct
//
// Builds made with `go install` carry no ldflags; for those the module
// version and VCS stamp embedded by the Go toolchain are used instead.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set by ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the resolved build description printed by `distinct version`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo resolves the build description, preferring ldflags values over
// the toolchain's embedded build info.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	return info
}

// fillFromBuildInfo replaces unset fields with the module version and the
// vcs.revision / vcs.time settings.
func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" && s.Value != "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" && s.Value != "" {
				info.Date = s.Value
			}
		}
	}
}

// String is the one-line form used by `distinct version` and `--version`.
func String() string {
	return format(GetInfo())
}

func format(info Info) string {
	if info.Commit != "unknown" && info.Date != "unknown" {
		return fmt.Sprintf("distinct %s (commit %s, built %s, %s %s)",
			info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("distinct %s (%s %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns just the version, for cobra's Version field.
func Short() string {
	return GetInfo().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
