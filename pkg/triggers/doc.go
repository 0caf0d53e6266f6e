// Package triggers decides whether a unit applies to the current machine
// and target tree.
//
// A unit's triggers are a disjunction: the unit applies when the list is
// empty or any top-level trigger is true. Each trigger node is evaluated
// in a fixed order. The base predicates are OR-combined. A node with no
// predicates is true only when it has no combinators either, otherwise it
// starts from false. "and" is consulted only while the result is true,
// "or" only while it is false, and "not" negates last. No algebraic
// simplification is performed, so nodes such as {not, or} keep their
// literal meaning.
package triggers
