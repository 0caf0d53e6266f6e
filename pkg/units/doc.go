// Package units loads, validates and plans dictatables.
//
// Loading is fail-fast: every unit is discovered and validated before any
// trigger is evaluated, so one invalid unit stops the run with nothing
// touched. Planning evaluates each unit's triggers against the target root
// and expands applicable units into work items in discovery order.
package units
