package version

import (
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	got := Full()
	if !strings.Contains(got, Version) || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Full() = %q, want version and commit", got)
	}
}

func TestCurrent(t *testing.T) {
	info := Current()
	if info.Version == "" || info.Commit == "" {
		t.Errorf("Current() = %+v, want populated version and commit", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q", info.Platform)
	}
}
