package formula

// Negate returns the negation of node. TRUE/FALSE negate to their dual
// sentinel and a double-not collapses to its grandchild; every other kind
// is wrapped in a fresh Not node. This is the one-step negation used by
// package classify to test a refined formula ψ by evaluating ¬ψ; it does
// not recursively push negation to the leaves. The robustness kernel
// evaluates Not nodes directly, so a one-step wrap is sufficient.
func Negate(node *Node) *Node {
	switch node.Kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindNot:
		return node.Child
	default:
		return &Node{Kind: KindNot, ID: "neg_" + node.ID, Child: node}
	}
}
