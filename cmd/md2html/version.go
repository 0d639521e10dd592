package main

import "runtime/debug"

// Version is set at build time via ldflags.
var Version = "dev"

// versionString returns the version to report: the build-time value when
// set, otherwise the module version recorded in the binary's build info.
func versionString() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}
