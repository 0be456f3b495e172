// Package version reports the running build's identity for health
// output, logs, and user-agent strings.
package version

import "runtime/debug"

// AppName identifies this service in version strings.
const AppName = "brandlens"

// commit is injected for container builds where .git is absent:
//
//	-ldflags "-X github.com/brandlens/brandlens/pkg/version.commit=$SHA"
var commit string

// Commit is the short build commit hash, "dev" when neither the ldflags
// injection nor embedded VCS metadata is available (go test, non-git
// checkouts).
var Commit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// String returns "brandlens/<commit>".
func String() string {
	return AppName + "/" + Commit
}
