// Package types defines the declarative model shared by every dictator
// package: units ("dictatables"), their triggers and actions, and the
// filesystem abstraction the engine reads and mutates through.
package types
