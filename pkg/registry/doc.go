// Package registry provides a generic, type-safe registry used to look up
// trigger predicates and work factories by their declarative key.
// Registration normally happens from init() functions; the registry keeps
// insertion order so callers can iterate in the order items were declared.
package registry
