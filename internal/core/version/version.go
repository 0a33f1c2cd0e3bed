// Package version reports what was built, the vars are stamped with -ldflags -X
package version

import "fmt"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build info
func Info() BuildInfo {
	return BuildInfo{Service: "yamlgate", Version: version, Commit: commit, Date: date}
}

// String renders "v (commit, date)" for --version
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.Version, b.Commit, b.Date)
}
