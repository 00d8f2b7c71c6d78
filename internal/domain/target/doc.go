// Package target contains core domain types for package generation.
//
// It defines the fixed architecture enumeration with its Rust target triple
// mapping and the Target type describing one output directory to populate.
package target
