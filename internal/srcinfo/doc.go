// Package srcinfo wraps the external makepkg tool used to derive the
// .SRCINFO companion file from a generated PKGBUILD.
package srcinfo
