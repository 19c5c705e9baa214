// Package refkernel implements robustness.Kernel with the textbook
// pointwise min/max STL robustness semantics: predicate robustness is
// signed distance to the threshold, not negates, and/or are min/max, and
// always/eventually are windowed min/max over the step interval. It
// exists so the lattice parser, pruning DAG, and parameter synthesis are
// exercisable end to end without depending on an external differentiable
// STL engine.
package refkernel
