// Package work turns unit actions into convergent work items.
//
// Every declarative key of an action (copyFrom, beSubsetOfJsonFile, chmod,
// haveJsonPathValues) has a factory registered under that key. A Work item
// answers whether its end state already holds (IsApplied, never mutating),
// reaches it with the minimal mutation (Apply) and describes it in one
// static line (Info). Applying an applied item is a no-op from the
// driver's point of view because the driver only calls Apply after
// IsApplied returned false.
package work
