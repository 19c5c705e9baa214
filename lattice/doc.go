// Package lattice builds and manipulates the refinement lattice: the
// finite set of refined STL formulas reachable from a root formula by
// splitting temporal intervals into segments and simplifying Boolean
// structure, ordered by implication.
//
// Two files carry the weight of the package:
//
//   - parser.go walks the formula tree under a depth spec, generating
//     refined-formula candidates and the implication edges between them,
//     then deduplicates by simplified formula identifier and reduces the
//     transitive closure to its Hasse diagram.
//   - graph.go stores the result as an arena of Node values addressed by
//     stable index (see design note on ownership below) and implements
//     longest/random path search and the two activation-pruning
//     operations the classifier strategies drive.
//
// Ownership model: the arena (Graph.nodes) owns every Node by index;
// neighbor sets (greaterAll, smallerAll, greaterImme, smallerImme) are
// []int slices of those indices, never pointers. Pruning a node flips one
// bool in its Node without touching any other node's storage. The arena
// holds *Node values, so copying the arena slice copies only the
// pointers; the copy shares its Node values with the original.
package lattice
