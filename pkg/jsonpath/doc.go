// Package jsonpath reads and writes JSON documents addressed by simple
// JSONPath expressions.
//
// The supported grammar is the deterministic subset of JSONPath that names
// exactly one location: an optional leading "$", dotted member names,
// bracketed quoted names (['a.b'] or ["a b"]) and non-negative array
// indexes ([0]). Wildcards, filters, slices and recursive descent are
// rejected because a single location is needed both for reading and for
// writing. Expressions are translated to gjson and sjson paths.
package jsonpath
