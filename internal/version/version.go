// Package version reports the build version of the tool.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is overridden at build time with
// -ldflags "-X github.com/StephanMalan/project-toml-parser/internal/version.Version=x.y.z".
var Version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linked version, the module version recorded in the
// build info, or "dev". The result never carries a leading "v".
func GetVersion() string {
	if Version != "" {
		return strings.TrimPrefix(Version, "v")
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return "dev"
}
