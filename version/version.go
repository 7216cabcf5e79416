package version

import (
	"strings"

	"github.com/carlmjohnson/versioninfo"
)

var (
	// Version of the tool, set during the build
	Version = versioninfo.Version
	// GitCommit is the build's git revision, set during the build
	GitCommit = versioninfo.Revision
	// Environment is "development" unless overridden during the build
	Environment = "development"
)

// IsPre is true when the current version is a prerelease
func IsPre() bool {
	return strings.Contains(Version, "-")
}
