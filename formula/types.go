package formula

import "fmt"

// Kind tags the six STL node variants plus the boolean sentinels TRUE/FALSE.
type Kind uint8

const (
	KindPredicate Kind = iota
	KindTrue
	KindFalse
	KindNot
	KindAnd
	KindOr
	KindAlways
	KindEventually
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNot:
		return "not"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindAlways:
		return "always"
	case KindEventually:
		return "eventually"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op is a predicate comparator.
type Op uint8

const (
	// OpLess is the '<' comparator: signal < threshold.
	OpLess Op = iota
	// OpGreater is the '>' comparator: signal > threshold.
	OpGreater
)

func (o Op) String() string {
	if o == OpLess {
		return "<"
	}
	return ">"
}

// Bound is an interval endpoint: either a concrete value or a symbolic
// name resolved later by package synth / package robustness.
type Bound struct {
	Symbolic bool
	Value    float64
	Name     string
}

// Concrete constructs a numeric Bound.
func Concrete(v float64) Bound { return Bound{Value: v} }

// Symbol constructs a symbolic Bound identified by name.
func Symbol(name string) Bound { return Bound{Symbolic: true, Name: name} }

// String renders a Bound for diagnostics and node-ID composition.
func (b Bound) String() string {
	if b.Symbolic {
		return b.Name
	}
	return fmt.Sprintf("%g", b.Value)
}

// Interval is a temporal operator's (lo, hi) window.
type Interval struct {
	Lo, Hi Bound
}

// Node is the closed-sum-type STL formula node. Only the fields relevant
// to Kind are populated; the rest are zero.
type Node struct {
	Kind Kind
	ID   string

	// Boolean/temporal children.
	Left, Right *Node // And, Or
	Child       *Node // Not, Always, Eventually

	// Always / Eventually.
	Span Interval

	// Predicate leaf.
	PredName      string
	PredOp        Op
	PredThreshold float64
	SignalIndex   int
}

// Equal reports whether two nodes are the same formula by identifier.
// Identifier equality is this module's semantic identity (see doc.go).
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.ID == other.ID
}

func (n *Node) String() string {
	switch n.Kind {
	case KindPredicate:
		return fmt.Sprintf("%s %s %g", n.PredName, n.PredOp, n.PredThreshold)
	case KindTrue:
		return "TRUE"
	case KindFalse:
		return "FALSE"
	case KindNot:
		return "not(" + n.Child.String() + ")"
	case KindAnd:
		return "(" + n.Left.String() + ") and (" + n.Right.String() + ")"
	case KindOr:
		return "(" + n.Left.String() + ") or (" + n.Right.String() + ")"
	case KindAlways:
		return fmt.Sprintf("alw_[%s,%s](%s)", n.Span.Lo, n.Span.Hi, n.Child.String())
	case KindEventually:
		return fmt.Sprintf("ev_[%s,%s](%s)", n.Span.Lo, n.Span.Hi, n.Child.String())
	default:
		return fmt.Sprintf("Node(%s, %s)", n.Kind, n.ID)
	}
}
