// Package robustness defines the boundary between the refinement lattice
// and whatever STL robustness engine actually walks a trace batch.
//
// Kernel is the minimal interface a robustness engine must expose: build a
// leaf, build each interior connective, evaluate a fully built formula
// against a batch. The adapter in adapter.go lowers a formula.Node (plus a
// binding for its symbolic interval endpoints) into a Kernel's Formula
// value without ever depending on a concrete engine. Package refkernel
// ships one reference implementation so the rest of the module is
// self-testable; production deployments are expected to swap in a
// different Kernel behind the same interface.
package robustness
