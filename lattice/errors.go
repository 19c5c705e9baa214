package lattice

import "errors"

// Sentinel errors for lattice construction and traversal.
var (
	// ErrDepthShapeMismatch indicates a DepthSpec whose shape does not
	// mirror the formula tree it accompanies (wrong Sub arity).
	ErrDepthShapeMismatch = errors.New("lattice: depth spec shape does not match formula")

	// ErrInvalidSplit indicates a DepthSpec.Split below 1.
	ErrInvalidSplit = errors.New("lattice: split count must be >= 1")

	// ErrUnsupportedNodeKind indicates a formula.Kind the parser has no
	// case for.
	ErrUnsupportedNodeKind = errors.New("lattice: unsupported formula node kind")

	// ErrEmptyGraph indicates an operation that requires at least one
	// node was called on an empty Graph.
	ErrEmptyGraph = errors.New("lattice: graph has no nodes")

	// ErrNodeNotFound indicates a formula ID with no corresponding node.
	ErrNodeNotFound = errors.New("lattice: node not found")
)
