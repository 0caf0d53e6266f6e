// Package schema validates discovered units before anything runs.
//
// Validation happens in two passes. The raw document is checked against
// the embedded JSON schema (draft 2020-12) for structure, then the decoded
// types.UnitConfig is checked with struct rules for what the schema cannot
// express: octal modes, supported JSON paths and actions that declare at
// least one end state. Every violation of every unit is collected; a
// single invalid unit rejects the whole set.
package schema
