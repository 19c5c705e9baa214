package robustness

import (
	"fmt"
	"math"

	"github.com/stlrefine/ceclass/formula"
)

// sentinelIndex marks a Leaf call as a realized true/false constant rather
// than a real signal comparison: no trace column carries a negative
// index, so a Kernel recognizes it and returns threshold verbatim,
// ignoring op and the trace data entirely.
const sentinelIndex = -1

// sentinelMagnitude is the constant robustness assigned to the true/false
// sentinels: comfortably larger in magnitude than any ordinary predicate
// robustness, so it never accidentally becomes the binding constraint in
// a min/max chain.
const sentinelMagnitude = 1e6

// Lower translates root into k's Formula representation, resolving every
// symbolic interval endpoint via binding and converting continuous-time
// bounds to integer step indices via dt. An unresolved symbolic name is
// ErrUnresolvedBound.
func Lower(root *formula.Node, binding map[string]float64, dt float64, k Kernel) (Formula, error) {
	return lower(root, binding, dt, k)
}

func lower(n *formula.Node, binding map[string]float64, dt float64, k Kernel) (Formula, error) {
	switch n.Kind {
	case formula.KindTrue:
		return k.Leaf(formula.OpGreater, sentinelIndex, sentinelMagnitude), nil
	case formula.KindFalse:
		return k.Leaf(formula.OpGreater, sentinelIndex, -sentinelMagnitude), nil
	case formula.KindPredicate:
		return k.Leaf(n.PredOp, n.SignalIndex, n.PredThreshold), nil
	case formula.KindNot:
		child, err := lower(n.Child, binding, dt, k)
		if err != nil {
			return nil, err
		}
		return k.Not(child), nil
	case formula.KindAnd:
		left, right, err := lowerPair(n, binding, dt, k)
		if err != nil {
			return nil, err
		}
		return k.And(left, right), nil
	case formula.KindOr:
		left, right, err := lowerPair(n, binding, dt, k)
		if err != nil {
			return nil, err
		}
		return k.Or(left, right), nil
	case formula.KindAlways:
		child, loStep, hiStep, err := lowerTemporal(n, binding, dt, k)
		if err != nil {
			return nil, err
		}
		return k.Always(child, loStep, hiStep), nil
	case formula.KindEventually:
		child, loStep, hiStep, err := lowerTemporal(n, binding, dt, k)
		if err != nil {
			return nil, err
		}
		return k.Eventually(child, loStep, hiStep), nil
	default:
		return nil, fmt.Errorf("robustness: %w: kind %v", formula.ErrUnsupportedKind, n.Kind)
	}
}

func lowerPair(n *formula.Node, binding map[string]float64, dt float64, k Kernel) (Formula, Formula, error) {
	left, err := lower(n.Left, binding, dt, k)
	if err != nil {
		return nil, nil, err
	}
	right, err := lower(n.Right, binding, dt, k)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func lowerTemporal(n *formula.Node, binding map[string]float64, dt float64, k Kernel) (Formula, int, int, error) {
	child, err := lower(n.Child, binding, dt, k)
	if err != nil {
		return nil, 0, 0, err
	}
	loStep, err := resolveStep(n.Span.Lo, binding, dt)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("robustness: node %s: %w", n.ID, err)
	}
	hiStep, err := resolveStep(n.Span.Hi, binding, dt)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("robustness: node %s: %w", n.ID, err)
	}
	return child, loStep, hiStep, nil
}

func resolveStep(b formula.Bound, binding map[string]float64, dt float64) (int, error) {
	v := b.Value
	if b.Symbolic {
		resolved, ok := binding[b.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnresolvedBound, b.Name)
		}
		v = resolved
	}
	return int(math.Round(v / dt)), nil
}
