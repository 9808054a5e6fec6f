// Package version reports which build of dirclip is running.
//
// Release builds stamp Version, Commit and BuildTime through -ldflags -X.
// Anything left unstamped is filled from the module and VCS metadata the Go
// toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	Version   string
	Commit    string
	BuildTime string
)

const devVersion = "dev"

// Info describes a build.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool // built from a dirty work tree
	GoVersion string
}

// Get merges the stamped variables with the embedded build metadata.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	i := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if bi != nil {
		if i.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if i.Commit == "" {
					i.Commit = s.Value
				}
			case "vcs.time":
				if i.BuildTime == "" {
					i.BuildTime = s.Value
				}
			case "vcs.modified":
				i.Modified = s.Value == "true"
			}
		}
		if bi.GoVersion != "" {
			i.GoVersion = bi.GoVersion
		}
	}
	if i.Version == "" {
		i.Version = devVersion
	}
	return i
}

// Short is the bare version, used by --version and version --short.
func (i Info) Short() string {
	return i.Version
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dirclip %s", i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if i.Modified {
			commit += "-dirty"
		}
		fmt.Fprintf(&b, " (%s)", commit)
	}
	if i.BuildTime != "" {
		fmt.Fprintf(&b, " built %s", i.BuildTime)
	}
	fmt.Fprintf(&b, " %s %s/%s", i.GoVersion, runtime.GOOS, runtime.GOARCH)
	return b.String()
}
