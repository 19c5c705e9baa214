package lattice

import "github.com/stlrefine/ceclass/formula"

// DepthSpec mirrors the shape of a formula.Node tree and supplies, per
// operator node, how many refinement segments/branches the parser should
// generate. Split is the number of temporal segments for Always/
// Eventually nodes, or conventionally 1 for Boolean/leaf nodes. Sub holds
// one entry per child, in the same order the formula factories took them.
type DepthSpec struct {
	Split int
	Sub   []DepthSpec
}

// D1 is the conventional depth-1 leaf spec used for predicate nodes and
// any Boolean node that performs no further splitting.
var D1 = DepthSpec{Split: 1}

// validateDepthSpec checks that k's shape mirrors phi's and that every Split is
// positive, recursively.
func validateDepthSpec(phi *formula.Node, k DepthSpec) error {
	if k.Split < 1 {
		return ErrInvalidSplit
	}
	switch phi.Kind {
	case formula.KindPredicate, formula.KindTrue, formula.KindFalse:
		return nil
	case formula.KindNot, formula.KindAlways, formula.KindEventually:
		if len(k.Sub) != 1 {
			return ErrDepthShapeMismatch
		}
		return validateDepthSpec(phi.Child, k.Sub[0])
	case formula.KindAnd, formula.KindOr:
		if len(k.Sub) != 2 {
			return ErrDepthShapeMismatch
		}
		if err := validateDepthSpec(phi.Left, k.Sub[0]); err != nil {
			return err
		}
		return validateDepthSpec(phi.Right, k.Sub[1])
	default:
		return ErrUnsupportedNodeKind
	}
}
