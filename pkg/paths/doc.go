// Package paths provides centralized path handling for dictator.
//
// It resolves the dictator root (where the dictatables folder lives), the
// target root (the tree being converged) and the XDG locations used for
// user configuration and logs.
package paths
