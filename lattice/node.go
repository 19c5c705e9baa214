package lattice

import (
	"github.com/stlrefine/ceclass/formula"
)

// Bounds is a concrete numeric interval (lo, hi) that a symbolic bound
// name resolves to — inherited from the parent interval being split.
type Bounds struct {
	Lo, Hi float64
}

// Witness is the record attached to a node when it is proven falsifiable:
// the parameter binding (if any) and the synthesis diagnostics that found
// it. It is intentionally a thin struct here; package classify copies
// these fields out of the richer synth.Result when it records a witness.
type Witness struct {
	Params   map[string]float64
	ObjBest  float64
	NumEvals int
}

// Node is one refined formula in the lattice. It owns a single formula
// tree and four directed neighbor sets addressed by stable index into the
// owning Graph's arena (see doc.go).
type Node struct {
	Formula *formula.Node

	greaterAll  []int // full transitive relation: weaker formulas
	smallerAll  []int // full transitive relation: stronger formulas
	greaterImme []int // Hasse reduction of greaterAll
	smallerImme []int // Hasse reduction of smallerAll

	Active    bool
	Witnesses []Witness
}

// ID is the node's identity: its formula's identifier.
func (n *Node) ID() string { return n.Formula.ID }

// GreaterImme returns the indices of immediate weaker neighbors.
func (n *Node) GreaterImme() []int { return n.greaterImme }

// SmallerImme returns the indices of immediate stronger neighbors.
func (n *Node) SmallerImme() []int { return n.smallerImme }

// GreaterAll returns the indices of all (transitively) weaker neighbors.
func (n *Node) GreaterAll() []int { return n.greaterAll }

// SmallerAll returns the indices of all (transitively) stronger neighbors.
func (n *Node) SmallerAll() []int { return n.smallerAll }

func addUnique(set []int, v int, self int) []int {
	if v == self {
		return set
	}
	for _, existing := range set {
		if existing == v {
			return set
		}
	}
	return append(set, v)
}
