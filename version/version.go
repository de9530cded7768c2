// Package version provides build version information embedding.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/sidewayslabs/sideways/version.Version=1.2.0"
//
// and is reported on every exported span as the service version.
package version

import "runtime/debug"

// Version is set at build time; "dev" for local builds.
var Version = "dev"

// String returns the effective version: the build-time value when set,
// otherwise the module version recorded in build info.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
