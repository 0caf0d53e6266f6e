// Package executor drives work items to their end state.
//
// For each item the executor asks IsApplied and only calls Apply when the
// end state does not hold yet. Dry runs never call Apply. The first
// failure stops the run unless KeepGoing is set, in which case the
// remaining items still run and the report carries an error at the end.
// Nothing is retried.
package executor
