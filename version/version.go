package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Product is the name used in the User-Agent header.
const Product = "untappd-go"

var (
	// Set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitzero"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Release reports whether the binary was built from a tagged version.
func (i Info) Release() bool {
	return i.Version != "dev" && !i.Dirty && !strings.Contains(i.Version, "dirty")
}

// String renders "1.2.0 (abc1234, built 2024-01-15)" with the known parts.
func (i Info) String() string {
	var extra []string
	if i.GitCommit != "" {
		c := i.GitCommit
		if i.Dirty {
			c += "-dirty"
		}
		extra = append(extra, c)
	}
	if !i.BuildDate.IsZero() {
		extra = append(extra, "built "+i.BuildDate.UTC().Format(time.DateOnly))
	}
	if len(extra) == 0 {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(extra, ", "))
}

// Get returns the build info, filling gaps from the embedded VCS stamp.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildDate.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildDate = t
				}
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// UserAgent returns "untappd-go/<version>".
func UserAgent() string {
	return Product + "/" + Version
}
