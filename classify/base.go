package classify

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/internal/rngutil"
	"github.com/stlrefine/ceclass/lattice"
	"github.com/stlrefine/ceclass/robustness"
	"github.com/stlrefine/ceclass/synth"
	"github.com/stlrefine/ceclass/tracedata"
)

// base is the shared state every strategy closes over: the lattice
// being whittled down, the kernel/batch pair parameter synthesis tests
// against, and the per-run budgets and RNG stream. Strategies never
// construct this directly; Run does.
type base struct {
	ctx    context.Context
	graph  *lattice.Graph
	kernel robustness.Kernel
	batch  tracedata.Batch

	dt              float64
	maxTimePerNode  time.Duration
	maxEvalsPerNode int
	rng             *rand.Rand

	numSynthCalls int
}

func newBase(ctx context.Context, g *lattice.Graph, k robustness.Kernel, batch tracedata.Batch, opts Options) *base {
	return &base{
		ctx:             ctx,
		graph:           g,
		kernel:          k,
		batch:           batch,
		dt:              opts.DT,
		maxTimePerNode:  opts.MaxTimePerNode,
		maxEvalsPerNode: opts.MaxEvalsPerNode,
		rng:             rngutil.FromSeed(opts.Seed),
	}
}

// midpointIndex is the binary-search and always-midpoint index rule:
// ceil(n/2) - 1, clamped to [0, n-1].
func midpointIndex(n int) int {
	mid := int(math.Ceil(float64(n)/2)) - 1
	if mid < 0 {
		mid = 0
	}
	if mid > n-1 {
		mid = n - 1
	}
	return mid
}

// synthesize runs one parameter-synthesis call against node idx: it
// negates the node's formula, searches for a witness of the negation
// over the node's symbolic parameters, and returns the raw synth
// result without touching the node's Active/Witnesses state. The
// objective is f(β) = min_t robustness(¬ψ[β], trace_t); synth.Solve's
// "satisfied iff f < 0" then means some trace falsifies ¬ψ[β],
// equivalently satisfies ψ[β] — exactly the witness this node needs.
func (b *base) synthesize(idx int) (synth.Result, error) {
	node := b.graph.Node(idx)
	negPhi := formula.Negate(node.Formula)
	paramNames := formula.ParamNames(node.Formula)
	bounds := convertBounds(lattice.ParamBoundsFor(b.graph, node))

	obj := func(params map[string]float64) (float64, error) {
		lowered, err := robustness.Lower(negPhi, params, b.dt, b.kernel)
		if err != nil {
			return 0, err
		}
		values := b.kernel.Evaluate(lowered, b.batch)
		minVal := math.Inf(1)
		for _, v := range values {
			if v < minVal {
				minVal = v
			}
		}
		return minVal, nil
	}

	stream := rngutil.DeriveRNG(b.rng, uint64(idx))
	result, err := synth.Solve(paramNames, bounds, obj, synth.Options{
		MaxTime:  b.maxTimePerNode,
		MaxEvals: b.maxEvalsPerNode,
		Seed:     stream.Int63(),
	})
	b.numSynthCalls++
	return result, err
}

// testAndPrune synthesizes a witness for idx and applies the full
// upward (SAT) or downward (UNSAT) closure, recomputing maxima. Used
// by alw-mid, bs-random, and long-bs; bfs uses testBFS instead, since
// its SAT closure does not propagate to ancestors.
func (b *base) testAndPrune(idx int) (bool, error) {
	result, err := b.synthesize(idx)
	if err != nil {
		return false, err
	}
	if result.Satisfied {
		b.graph.EliminateHold(idx, lattice.Witness{
			Params:   result.ParamsBest,
			ObjBest:  result.ObjBest,
			NumEvals: result.NumEvals,
		})
	} else {
		b.graph.EliminateUnhold(idx)
	}
	return result.Satisfied, nil
}

// testBFS synthesizes a witness for idx and applies bfs's asymmetric
// closure: on SAT it attaches the witness to idx only and leaves both
// idx.Active and every ancestor untouched (bfs finds ancestors' own
// witnesses independently as it fans out, rather than propagating one
// node's witness upward); on UNSAT it still bulk-deactivates the full
// downward closure via EliminateUnhold, same as every other strategy.
func (b *base) testBFS(idx int) (bool, error) {
	result, err := b.synthesize(idx)
	if err != nil {
		return false, err
	}
	if result.Satisfied {
		node := b.graph.Node(idx)
		node.Witnesses = append(node.Witnesses, lattice.Witness{
			Params:   result.ParamsBest,
			ObjBest:  result.ObjBest,
			NumEvals: result.NumEvals,
		})
	} else {
		b.graph.EliminateUnhold(idx)
	}
	return result.Satisfied, nil
}

// testDirect synthesizes a witness for idx and records the outcome
// locally, without propagating to any other node. Used by the
// no-prune strategy, which independently tests every node in
// insertion order regardless of what earlier tests concluded.
func (b *base) testDirect(idx int) (bool, error) {
	result, err := b.synthesize(idx)
	if err != nil {
		return false, err
	}
	node := b.graph.Node(idx)
	node.Active = false
	if result.Satisfied {
		node.Witnesses = append(node.Witnesses, lattice.Witness{
			Params:   result.ParamsBest,
			ObjBest:  result.ObjBest,
			NumEvals: result.NumEvals,
		})
	}
	return result.Satisfied, nil
}

func convertBounds(in map[string]lattice.Bounds) map[string]synth.Bounds {
	out := make(map[string]synth.Bounds, len(in))
	for name, v := range in {
		out[name] = synth.Bounds{Lo: v.Lo, Hi: v.Hi}
	}
	return out
}

// cancelled reports whether the caller's context has been cancelled;
// checked once per outer-loop iteration by every strategy so a CLI
// caller's context cancellation stops the run between node tests.
func (b *base) cancelled() bool {
	if b.ctx == nil {
		return false
	}
	select {
	case <-b.ctx.Done():
		return true
	default:
		return false
	}
}

func (b *base) buildResult(timeSplit, timeClass time.Duration) Result {
	nodes, _ := b.graph.Export()
	var covered []lattice.NodeView
	for _, n := range nodes {
		if n.Covered {
			covered = append(covered, n)
		}
	}
	return Result{
		NumClasses:    b.graph.Len(),
		NumCovered:    len(covered),
		TimeSplit:     timeSplit,
		TimeClass:     timeClass,
		TimeTotal:     timeSplit + timeClass,
		NumSynthCalls: b.numSynthCalls,
		CoveredNodes:  covered,
	}
}
