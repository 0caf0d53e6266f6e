// Package predicates implements the base predicates a trigger node may
// carry: itShould, runningOnPlatform, haveEnvironmentVariable,
// haveJsonPathValues and haveLineContaining.
//
// Predicates never return errors. A missing or unreadable target, an
// unparseable document or an invalid pattern all evaluate to false and are
// logged at debug level.
package predicates
