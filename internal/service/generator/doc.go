// Package generator produces Arch Linux package descriptor directories for
// relayfetch: a filled PKGBUILD, the static auxiliary file set, and a
// .SRCINFO companion file derived by makepkg.
//
// RunSource handles only the source package target; RunAll additionally
// processes one binary target per supported architecture and logs the
// resulting directory tree. Targets are processed sequentially and the
// first failing step aborts the run.
package generator
