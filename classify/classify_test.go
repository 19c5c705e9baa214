package classify

import (
	"context"
	"sort"
	"testing"

	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/lattice"
	"github.com/stlrefine/ceclass/robustness/refkernel"
	"github.com/stlrefine/ceclass/tracedata"
	"github.com/stretchr/testify/require"
)

func speedBelow100(t *testing.T) *formula.Node {
	t.Helper()
	phi, err := formula.Predicate("speed", formula.OpLess, 100, 0, "")
	require.NoError(t, err)
	return phi
}

func twoTraceBatch(t *testing.T) tracedata.Batch {
	t.Helper()
	// Trace 0 holds speed=80 (satisfies speed<100); trace 1 holds
	// speed=120 (violates it). The predicate node is satisfiable (trace 0
	// witnesses it) and the TRUE node below it is trivially always satisfiable,
	// so both lattice nodes end up covered regardless of traversal order.
	batch, err := tracedata.NewBatch([]float64{80, 80, 120, 120}, 2, 2, 1)
	require.NoError(t, err)
	return batch
}

func coveredIDs(r Result) []string {
	ids := make([]string, 0, len(r.CoveredNodes))
	for _, n := range r.CoveredNodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)
	return ids
}

func TestAllStrategiesAgreeOnFinalClassification(t *testing.T) {
	phi := speedBelow100(t)
	batch := twoTraceBatch(t)
	kernel := refkernel.StandardKernel{}

	strategies := []Strategy{NoPrune, BFS, AlwMid, BSRandom, LongBS}
	var results []Result
	for _, s := range strategies {
		r, err := Run(context.Background(), phi, lattice.D1, kernel, batch, s, Options{DT: 1, Seed: 42})
		require.NoError(t, err)
		results = append(results, r)
	}

	for i := 1; i < len(results); i++ {
		require.Equal(t, results[0].NumClasses, results[i].NumClasses, "strategy %s", strategies[i])
		require.Equal(t, results[0].NumCovered, results[i].NumCovered, "strategy %s", strategies[i])
		require.Equal(t, coveredIDs(results[0]), coveredIDs(results[i]), "strategy %s", strategies[i])
	}
}

func TestNoPruneIssuesExactlyOneSynthCallPerNode(t *testing.T) {
	phi := speedBelow100(t)
	batch := twoTraceBatch(t)
	kernel := refkernel.StandardKernel{}

	graph, err := lattice.Parse(phi, lattice.D1)
	require.NoError(t, err)
	expectedCalls := graph.Len()

	r, err := Run(context.Background(), phi, lattice.D1, kernel, batch, NoPrune, Options{DT: 1, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, expectedCalls, r.NumSynthCalls)
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	phi := speedBelow100(t)
	batch := twoTraceBatch(t)
	kernel := refkernel.StandardKernel{}

	_, err := Run(context.Background(), phi, lattice.D1, kernel, batch, Strategy("bogus"), Options{})
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRunRespectsCancelledContext(t *testing.T) {
	phi := speedBelow100(t)
	batch := twoTraceBatch(t)
	kernel := refkernel.StandardKernel{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, phi, lattice.D1, kernel, batch, NoPrune, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

// diamondFormula builds And(speed<90, accel>2), which lattice.Parse
// refines into a diamond: the conjunction at the top, the two bare
// predicates as incomparable middle nodes each reachable only from the
// conjunction, and TRUE at the bottom reachable from both predicates.
func diamondFormula(t *testing.T) *formula.Node {
	t.Helper()
	speed, err := formula.Predicate("speed", formula.OpLess, 90, 0, "speed_lt_90")
	require.NoError(t, err)
	accel, err := formula.Predicate("accel", formula.OpGreater, 2, 1, "accel_gt_2")
	require.NoError(t, err)
	conj, err := formula.And(speed, accel, "conj")
	require.NoError(t, err)
	return conj
}

func diamondDepth() lattice.DepthSpec {
	return lattice.DepthSpec{Split: 1, Sub: []lattice.DepthSpec{lattice.D1, lattice.D1}}
}

func diamondBatch(t *testing.T) tracedata.Batch {
	t.Helper()
	// One trace, one timestep, two signal dims: speed=80 (<90, holds) and
	// accel=5 (>2, holds), so every node in the diamond is satisfiable.
	batch, err := tracedata.NewBatch([]float64{80, 5}, 1, 1, 2)
	require.NoError(t, err)
	return batch
}

// TestBFSIndependentlySynthesizesEveryDiamondNode guards against bfs
// reusing one node's witness for an unrelated node reachable through a
// different parent. In the diamond built by diamondFormula, the
// conjunction has two incomparable children (the bare predicates), both
// converging on a shared TRUE descendant: if bfs ever attached a
// dequeued node's witness to an ancestor or an unrelated sibling instead
// of synthesizing one independently, NumSynthCalls would fall short of
// the node count even though every node still ends up covered.
func TestBFSIndependentlySynthesizesEveryDiamondNode(t *testing.T) {
	phi := diamondFormula(t)
	depth := diamondDepth()
	batch := diamondBatch(t)
	kernel := refkernel.StandardKernel{}

	graph, err := lattice.Parse(phi, depth)
	require.NoError(t, err)
	expectedCalls := graph.Len()

	r, err := Run(context.Background(), phi, depth, kernel, batch, BFS, Options{DT: 1, Seed: 7})
	require.NoError(t, err)

	require.Equal(t, expectedCalls, r.NumSynthCalls,
		"every diamond node must be independently synthesized, not inherit a witness via propagation")
	require.Equal(t, expectedCalls, r.NumCovered)
	require.Len(t, coveredIDs(r), expectedCalls)
}

func TestLongBSCoversBothNodesOnTwoNodeLattice(t *testing.T) {
	phi := speedBelow100(t)
	batch := twoTraceBatch(t)
	kernel := refkernel.StandardKernel{}

	r, err := Run(context.Background(), phi, lattice.D1, kernel, batch, LongBS, Options{DT: 1})
	require.NoError(t, err)
	require.Equal(t, 2, r.NumClasses)
	require.Equal(t, 2, r.NumCovered)
	require.LessOrEqual(t, r.NumSynthCalls, r.NumClasses)
}
