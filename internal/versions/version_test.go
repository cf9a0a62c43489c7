package versions

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfoWithValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		version     string
		commit      string
		buildDate   string
		wantVersion string
	}{
		{
			name:        "release_build",
			version:     "v1.2.3",
			commit:      "abcdef1234567890",
			buildDate:   "unknown",
			wantVersion: "v1.2.3",
		},
		{
			name:        "dev_build_uses_commit",
			version:     "dev",
			commit:      "abcdef1234567890",
			buildDate:   "unknown",
			wantVersion: "build-abcdef12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := getVersionInfoWithValues(tt.version, tt.commit, tt.buildDate)
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Contains(t, info.Platform, runtime.GOOS)
		})
	}
}

func TestGetVersionInfoFormatsBuildDate(t *testing.T) {
	t.Parallel()
	info := getVersionInfoWithValues("v1.0.0", "abc", "2026-08-30T12:00:00Z")
	assert.Equal(t, "2026-08-30 12:00:00 UTC", info.BuildDate)
}
