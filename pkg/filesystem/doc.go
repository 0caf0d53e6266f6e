// Package filesystem provides filesystem implementations for dictator.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by real runs and an afero-backed one used by
// tests that want an in-memory tree.
package filesystem
