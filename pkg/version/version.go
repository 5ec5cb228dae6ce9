// Package version holds the build-time version string, overridden via
// -ldflags "-X github.com/markvantol/dirhunt/pkg/version.Version=..." in
// release builds.
package version

// Version is the current build version. "dev" for local builds.
var Version = "dev"
