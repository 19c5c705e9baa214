package lattice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stlrefine/ceclass/formula"
)

func twoChainNodes(t *testing.T) []*Node {
	t.Helper()
	weak, err := formula.Predicate("speed", formula.OpLess, 100, 0, "weak")
	require.NoError(t, err)
	strong, err := formula.Predicate("speed", formula.OpLess, 90, 0, "strong")
	require.NoError(t, err)

	a := &Node{Formula: weak, Active: true}
	b := &Node{Formula: strong, Active: true}
	// speed<90 implies speed<100: strong is smaller, weak is greater.
	a.smallerAll = []int{1}
	b.greaterAll = []int{0}
	return []*Node{a, b}
}

func TestNewGraphComputesImmediateAndMaxima(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	require.Equal(t, 2, g.Len())
	require.ElementsMatch(t, []int{0}, g.Maxima())
	require.ElementsMatch(t, []int{1}, g.Node(0).SmallerImme())
	require.ElementsMatch(t, []int{0}, g.Node(1).GreaterImme())
}

func TestSetImmediateSkipsRedundantTransitiveEdge(t *testing.T) {
	// three-node chain a > b > c, with a redundant direct a > c recorded
	// in the "all" relation; the Hasse reduction must drop a-c.
	pa, _ := formula.Predicate("x", formula.OpLess, 30, 0, "a")
	pb, _ := formula.Predicate("x", formula.OpLess, 20, 0, "b")
	pc, _ := formula.Predicate("x", formula.OpLess, 10, 0, "c")
	a := &Node{Formula: pa, Active: true}
	b := &Node{Formula: pb, Active: true}
	c := &Node{Formula: pc, Active: true}
	a.smallerAll = []int{1, 2}
	b.smallerAll = []int{2}
	b.greaterAll = []int{0}
	c.greaterAll = []int{0, 1}

	g := newGraph([]*Node{a, b, c}, map[string]Bounds{})

	require.ElementsMatch(t, []int{1}, g.Node(0).SmallerImme(), "a should only have an immediate edge to b, not c")
	require.ElementsMatch(t, []int{2}, g.Node(1).SmallerImme())
	require.ElementsMatch(t, []int{1}, g.Node(2).GreaterImme())
}

func TestLongestPathFindsDeepestActiveChain(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	seq, val := g.LongestPath()
	require.Equal(t, 2, val)
	require.Equal(t, []int{0, 1}, seq)
}

func TestEliminateHoldPropagatesUpward(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	g.EliminateHold(1, Witness{ObjBest: -0.5})
	require.False(t, g.Node(1).Active)
	require.False(t, g.Node(0).Active, "satisfying the stronger formula must also satisfy the weaker one")
	require.True(t, g.IsEmpty())
}

func TestEliminateUnholdPropagatesDownward(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	g.EliminateUnhold(0)
	require.False(t, g.Node(0).Active)
	require.False(t, g.Node(1).Active, "refuting the weaker formula must also refute the stronger one")
}

func TestRandomPathIsDeterministicUnderFixedSeed(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	path1, _ := g.RandomPath(rand.New(rand.NewSource(7)))
	path2, _ := g.RandomPath(rand.New(rand.NewSource(7)))
	require.Equal(t, path1, path2)
}

func TestExportListsNodesAndHasseEdges(t *testing.T) {
	nodes := twoChainNodes(t)
	g := newGraph(nodes, map[string]Bounds{})

	summaries, edges := g.Export()
	require.Len(t, summaries, 2)
	require.Equal(t, [][2]string{{"weak", "strong"}}, edges)
}
