package formula

import "fmt"

// Predicate builds a leaf comparing signal[signalIndex] against threshold
// with op. If id is empty, a canonical ID is derived from the fields so
// that structurally identical predicates deduplicate by identifier.
func Predicate(name string, op Op, threshold float64, signalIndex int, id string) (*Node, error) {
	if op != OpLess && op != OpGreater {
		return nil, ErrUnknownPredicateOp
	}
	if id == "" {
		id = fmt.Sprintf("%s_%s_%g", name, op, threshold)
	}
	return &Node{
		Kind:          KindPredicate,
		ID:            id,
		PredName:      name,
		PredOp:        op,
		PredThreshold: threshold,
		SignalIndex:   signalIndex,
	}, nil
}

// True returns the canonical TRUE sentinel.
func True() *Node { return &Node{Kind: KindTrue, ID: "TRUE"} }

// False returns the canonical FALSE sentinel.
func False() *Node { return &Node{Kind: KindFalse, ID: "FALSE"} }

// Not wraps child in negation.
func Not(child *Node, id string) (*Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Node{Kind: KindNot, ID: id, Child: child}, nil
}

// And conjoins left and right.
func And(left, right *Node, id string) (*Node, error) {
	if left == nil || right == nil {
		return nil, ErrNilChild
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Node{Kind: KindAnd, ID: id, Left: left, Right: right}, nil
}

// Or disjoins left and right.
func Or(left, right *Node, id string) (*Node, error) {
	if left == nil || right == nil {
		return nil, ErrNilChild
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Node{Kind: KindOr, ID: id, Left: left, Right: right}, nil
}

// Always wraps child with a bounded-time always over span.
func Always(child *Node, span Interval, id string) (*Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Node{Kind: KindAlways, ID: id, Child: child, Span: span}, nil
}

// Eventually wraps child with a bounded-time eventually over span.
func Eventually(child *Node, span Interval, id string) (*Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Node{Kind: KindEventually, ID: id, Child: child, Span: span}, nil
}

// WithID returns a shallow copy of n carrying a different ID. Used by the
// lattice parser to re-tag a single-child Cartesian-power chain with its
// canonical product ID without rebuilding the subtree.
func WithID(n *Node, id string) *Node {
	cp := *n
	cp.ID = id
	return &cp
}
