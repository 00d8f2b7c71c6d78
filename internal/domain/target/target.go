package target

import "path/filepath"

// Kind distinguishes the two build target flavors.
type Kind string

const (
	// KindSource is the source package target.
	KindSource Kind = "source"
	// KindBinary is a per-architecture binary package target.
	KindBinary Kind = "binary"
)

// Architecture pairs an Arch Linux architecture name with the Rust target
// triple used when substituting binary package templates.
type Architecture struct {
	// Name is the Arch Linux architecture identifier (pacman convention).
	Name string
	// RustTriple is the corresponding Rust target triple.
	RustTriple string
}

// architectures is the fixed set of supported CPU architectures.
// The order is deterministic and drives generation order.
//
//nolint:gochecknoglobals // Fixed enumeration shared by all binaries.
var architectures = []Architecture{
	{Name: "x86_64", RustTriple: "x86_64-unknown-linux-gnu"},
	{Name: "aarch64", RustTriple: "aarch64-unknown-linux-gnu"},
	{Name: "armv7h", RustTriple: "armv7-unknown-linux-gnueabihf"},
	{Name: "i686", RustTriple: "i686-unknown-linux-gnu"},
}

// Architectures returns the supported architectures in generation order.
// Callers receive a copy and may not mutate the enumeration.
func Architectures() []Architecture {
	return append([]Architecture(nil), architectures...)
}

// Target describes one isolated output directory to populate.
type Target struct {
	// Kind is the target flavor.
	Kind Kind
	// Arch is set only for binary targets.
	Arch Architecture
	// OutputDir is the directory receiving the generated descriptor set.
	OutputDir string
}

// Source returns the source package target rooted at sourceDir.
func Source(sourceDir string) Target {
	return Target{
		Kind:      KindSource,
		OutputDir: filepath.Clean(sourceDir),
	}
}

// Binaries returns one binary target per supported architecture,
// each under its own directory below binaryRoot.
func Binaries(binaryRoot string) []Target {
	targets := make([]Target, 0, len(architectures))
	for _, arch := range architectures {
		targets = append(targets, Target{
			Kind:      KindBinary,
			Arch:      arch,
			OutputDir: filepath.Join(binaryRoot, arch.Name),
		})
	}

	return targets
}
