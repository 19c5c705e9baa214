package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stlrefine/ceclass/formula"
)

func TestParseBarePredicateProducesTwoNodeLattice(t *testing.T) {
	pred, err := formula.Predicate("speed", formula.OpLess, 90, 0, "speed_lt_90")
	require.NoError(t, err)

	g, err := Parse(pred, D1)
	require.NoError(t, err)

	require.Equal(t, 2, g.Len())
	idx, ok := g.IndexOf("speed_lt_90")
	require.True(t, ok)
	trueIdx, ok := g.IndexOf("TRUE")
	require.True(t, ok)

	require.ElementsMatch(t, []int{trueIdx}, g.Node(idx).SmallerImme())
	require.ElementsMatch(t, []int{idx}, g.Node(trueIdx).GreaterImme())
}

func TestParseAlwaysSplitsIntoSegmentsAndRegistersParamBounds(t *testing.T) {
	pred, err := formula.Predicate("speed", formula.OpLess, 90, 0, "speed_lt_90")
	require.NoError(t, err)
	phi, err := formula.Always(pred, formula.Interval{Lo: formula.Concrete(0), Hi: formula.Concrete(30)}, "alw_phi")
	require.NoError(t, err)

	k := DepthSpec{Split: 2, Sub: []DepthSpec{D1}}
	g, err := Parse(phi, k)
	require.NoError(t, err)

	require.False(t, g.IsEmpty())
	require.Greater(t, g.Len(), 2, "splitting into 2 segments should refine beyond the bare TRUE/formula pair")

	require.NotEmpty(t, g.ParamBounds, "splitting an interval should register at least one symbolic midpoint bound")
}

func TestParseRejectsDepthShapeMismatch(t *testing.T) {
	pred, err := formula.Predicate("speed", formula.OpLess, 90, 0, "speed_lt_90")
	require.NoError(t, err)
	left, err := formula.Predicate("accel", formula.OpGreater, 2, 1, "accel_gt_2")
	require.NoError(t, err)
	conj, err := formula.And(pred, left, "conj")
	require.NoError(t, err)

	_, err = Parse(conj, D1)
	require.ErrorIs(t, err, ErrDepthShapeMismatch)
}

func TestParseConjunctionHasMultipleRefinements(t *testing.T) {
	left, err := formula.Predicate("speed", formula.OpLess, 90, 0, "speed_lt_90")
	require.NoError(t, err)
	right, err := formula.Predicate("accel", formula.OpGreater, 2, 1, "accel_gt_2")
	require.NoError(t, err)
	conj, err := formula.And(left, right, "conj")
	require.NoError(t, err)

	k := DepthSpec{Split: 1, Sub: []DepthSpec{D1, D1}}
	g, err := Parse(conj, k)
	require.NoError(t, err)

	require.Greater(t, g.Len(), 1)
	require.NotEmpty(t, g.Maxima())
	// Every maximum has no immediate ancestor.
	for _, m := range g.Maxima() {
		require.Empty(t, g.Node(m).GreaterImme())
	}
}
