package formula

import "errors"

// Sentinel errors for formula construction and introspection.
var (
	// ErrEmptyID indicates a factory was asked to mint a node with an empty ID.
	ErrEmptyID = errors.New("formula: node ID is empty")

	// ErrNilChild indicates a factory received a nil child node.
	ErrNilChild = errors.New("formula: child node is nil")

	// ErrUnknownPredicateOp indicates a predicate operator other than '<' or '>'.
	ErrUnknownPredicateOp = errors.New("formula: predicate operator must be '<' or '>'")

	// ErrUnsupportedKind indicates a Kind value unreachable by any factory,
	// surfaced by exhaustive switches that hit their default case.
	ErrUnsupportedKind = errors.New("formula: unsupported node kind")
)
