// Package testutil builds throwaway dictator roots and target trees for
// tests, either fully in memory or on disk under t.TempDir().
package testutil
