package refkernel

import "github.com/stlrefine/ceclass/formula"

// node is the kernel's own closed sum type for an already-lowered
// formula: the adapter in package robustness never looks inside it, only
// receives it back through robustness.Formula (an any) and passes it
// straight into Evaluate.
type node interface {
	isNode()
}

type leaf struct {
	op        formula.Op
	index     int
	threshold float64
}

type notNode struct{ child node }
type andNode struct{ a, b node }
type orNode struct{ a, b node }

type alwaysNode struct {
	child  node
	lo, hi int
}

type eventuallyNode struct {
	child  node
	lo, hi int
}

func (leaf) isNode()           {}
func (notNode) isNode()        {}
func (andNode) isNode()        {}
func (orNode) isNode()         {}
func (alwaysNode) isNode()     {}
func (eventuallyNode) isNode() {}
