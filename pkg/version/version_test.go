package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	pv, pc, pb := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, Commit, BuildTime = pv, pc, pb })
}

func TestResolveFromBuildInfo(t *testing.T) {
	stamp(t, "", "", "")

	bi := &debug.BuildInfo{
		GoVersion: "go1.23.1",
		Main:      debug.Module{Path: "dirclip", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-04-27T15:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	i := resolve(bi)

	if i.Short() != "v0.4.0" {
		t.Errorf("Short() = %q; want v0.4.0", i.Short())
	}
	want := "dirclip v0.4.0 (0123456789ab-dirty) built 2024-04-27T15:04:05Z go1.23.1 " + runtime.GOOS + "/" + runtime.GOARCH
	if got := i.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestResolveStampedWins(t *testing.T) {
	stamp(t, "1.2.3", "abcdefg", "")

	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.0.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffff"}, {Key: "vcs.time", Value: "2020-01-01T00:00:00Z"}},
	}
	i := resolve(bi)

	if i.Version != "1.2.3" || i.Commit != "abcdefg" {
		t.Fatalf("stamped values overridden: %+v", i)
	}
	if i.BuildTime != "2020-01-01T00:00:00Z" {
		t.Fatalf("BuildTime = %q; want the VCS time for an unstamped build time", i.BuildTime)
	}
}

func TestResolveDevelBuild(t *testing.T) {
	stamp(t, "", "", "")

	for _, bi := range []*debug.BuildInfo{nil, {Main: debug.Module{Version: "(devel)"}}} {
		i := resolve(bi)
		if i.Short() != "dev" {
			t.Errorf("Short() = %q; want dev", i.Short())
		}
		if s := i.String(); strings.Contains(s, "()") || strings.Contains(s, "built") {
			t.Errorf("String() = %q; empty commit and build time must be omitted", s)
		}
	}
}
