package robustness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/robustness"
	"github.com/stlrefine/ceclass/robustness/refkernel"
	"github.com/stlrefine/ceclass/tracedata"
)

func TestLowerResolvesSymbolicBoundsAndConvertsToSteps(t *testing.T) {
	pred, err := formula.Predicate("x", formula.OpLess, 0.05, 0, "p")
	require.NoError(t, err)
	phi, err := formula.Always(pred, formula.Interval{
		Lo: formula.Concrete(0),
		Hi: formula.Symbol("t_end"),
	}, "alw")
	require.NoError(t, err)

	k := refkernel.StandardKernel{}
	_, err = robustness.Lower(phi, map[string]float64{}, 1.0, k)
	require.ErrorIs(t, err, robustness.ErrUnresolvedBound)

	lowered, err := robustness.Lower(phi, map[string]float64{"t_end": 10}, 1.0, k)
	require.NoError(t, err)
	require.NotNil(t, lowered)
}

func TestLowerAndEvaluateSentinelsAreConstant(t *testing.T) {
	k := refkernel.StandardKernel{}
	batch, err := tracedata.NewBatch([]float64{0, 0, 0, 0}, 1, 2, 2)
	require.NoError(t, err)

	trueF, err := robustness.Lower(formula.True(), nil, 1.0, k)
	require.NoError(t, err)
	falseF, err := robustness.Lower(formula.False(), nil, 1.0, k)
	require.NoError(t, err)

	require.Positive(t, k.Evaluate(trueF, batch)[0])
	require.Negative(t, k.Evaluate(falseF, batch)[0])
}

func TestLowerAndEvaluatePredicateMatchesSignedDistance(t *testing.T) {
	k := refkernel.StandardKernel{}
	pred, err := formula.Predicate("speed", formula.OpLess, 90, 0, "p")
	require.NoError(t, err)
	lowered, err := robustness.Lower(pred, nil, 1.0, k)
	require.NoError(t, err)

	batch, err := tracedata.NewBatch([]float64{80, 100}, 2, 1, 1)
	require.NoError(t, err)

	vals := k.Evaluate(lowered, batch)
	require.InDelta(t, 10.0, vals[0], 1e-9, "speed=80 < 90, robustness = 90-80")
	require.InDelta(t, -10.0, vals[1], 1e-9, "speed=100 > 90, robustness = 90-100")
}
