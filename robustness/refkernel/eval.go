package refkernel

import (
	"math"

	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/tracedata"
)

// sentinelIndex must match robustness.sentinelIndex: a Leaf built for the
// true/false sentinels carries a negative signal index and the constant
// robustness value directly in threshold.
const sentinelIndex = -1

// rho computes the pointwise robustness of n at step t of trace in
// batch, recursively. always/eventually clip their window to the
// trace's valid step range rather than erroring on an out-of-range
// bound, matching a bounded-time semantics over a finite trace.
func rho(n node, batch tracedata.Batch, trace, t int) float64 {
	switch v := n.(type) {
	case leaf:
		if v.index < 0 {
			return v.threshold
		}
		val := batch.At(trace, t, v.index)
		if v.op == formula.OpLess {
			return v.threshold - val
		}
		return val - v.threshold

	case notNode:
		return -rho(v.child, batch, trace, t)

	case andNode:
		return math.Min(rho(v.a, batch, trace, t), rho(v.b, batch, trace, t))

	case orNode:
		return math.Max(rho(v.a, batch, trace, t), rho(v.b, batch, trace, t))

	case alwaysNode:
		lo, hi := clipWindow(t, v.lo, v.hi, batch.Timesteps)
		m := math.Inf(1)
		for s := lo; s <= hi; s++ {
			m = math.Min(m, rho(v.child, batch, trace, s))
		}
		return m

	case eventuallyNode:
		lo, hi := clipWindow(t, v.lo, v.hi, batch.Timesteps)
		m := math.Inf(-1)
		for s := lo; s <= hi; s++ {
			m = math.Max(m, rho(v.child, batch, trace, s))
		}
		return m

	default:
		panic("refkernel: unreachable node variant")
	}
}

func clipWindow(t, lo, hi, timesteps int) (int, int) {
	start := t + lo
	end := t + hi
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if start > timesteps-1 {
		start = timesteps - 1
	}
	if end < 0 {
		end = 0
	}
	if end > timesteps-1 {
		end = timesteps - 1
	}
	return start, end
}
