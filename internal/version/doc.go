// Package version exposes build metadata for the generator binaries.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. The version
// reported here describes the generator itself; the relayfetch package
// version is an argument of every generation run.
package version
