// Package config defines filesystem layout and tool settings used by the
// packaging binaries and provides helpers to load, validate and save them
// in YAML format.
//
// All fields have working defaults, so the settings file is optional when
// running from the repository root.
package config
