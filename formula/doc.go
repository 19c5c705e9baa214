// Package formula defines the Signal Temporal Logic (STL) syntax tree used
// throughout ceclass: predicates over named signals, Boolean connectives,
// and bounded-time always/eventually operators.
//
// Nodes are a closed sum type: a single Node struct tagged by Kind, with
// kind-specific fields populated by the matching factory (Predicate, True,
// False, Not, And, Or, Always, Eventually). Polymorphic operations such
// as String and Negate switch over Kind rather than using dynamic
// dispatch. Go does not check these switches for exhaustiveness; each
// has a default branch for a Kind it does not name.
//
// Nodes are immutable after construction and safe to share as subtrees:
// nothing in this package ever mutates a Node's fields post-factory.
// Identity is the Node's ID string; two nodes with the same ID are the
// same formula for every purpose in this module (deduplication,
// lattice-node keys, edge endpoints).
//
// Interval endpoints (formula.Bound) are either a concrete float64 or a
// symbolic name registered by the lattice parser when it splits a
// temporal interval; resolution of symbolic bounds to numbers happens in
// package synth and package robustness, never here.
package formula
