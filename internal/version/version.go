package version

import "runtime/debug"

// Version is set at build time via ldflags
var Version = "dev"

// GetVersion returns the version string for the application
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}
