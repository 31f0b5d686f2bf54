package version

import (
	"runtime/debug"
	"testing"
)

func TestGetVersion(t *testing.T) {
	origVersion, origRead := Version, readBuildInfo
	t.Cleanup(func() {
		Version, readBuildInfo = origVersion, origRead
	})

	buildInfo := func(v string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: v}}, true
		}
	}

	tests := []struct {
		name     string
		linked   string
		readInfo func() (*debug.BuildInfo, bool)
		want     string
	}{
		{"linked version", "1.4.0", buildInfo("v9.9.9"), "1.4.0"},
		{"linked version with prefix", "v1.4.0", buildInfo(""), "1.4.0"},
		{"go install module version", "", buildInfo("v1.2.3"), "1.2.3"},
		{"devel build", "", buildInfo("(devel)"), "dev"},
		{"no build info", "", func() (*debug.BuildInfo, bool) { return nil, false }, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.linked
			readBuildInfo = tt.readInfo

			if got := GetVersion(); got != tt.want {
				t.Errorf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
