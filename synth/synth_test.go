package synth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDirectSatisfiedWhenObjectiveNegative(t *testing.T) {
	result := EvaluateDirect(func(map[string]float64) (float64, error) { return -1.0, nil })
	require.True(t, result.Satisfied)
	require.Equal(t, 1, result.NumEvals)
}

func TestEvaluateDirectRecoversTransientError(t *testing.T) {
	result := EvaluateDirect(func(map[string]float64) (float64, error) { return 0, errors.New("boom") })
	require.False(t, result.Satisfied)
	require.Equal(t, penaltyValue, result.ObjBest)
}

func TestGridSearchRespectsDirectResultFields(t *testing.T) {
	result, err := Solve([]string{"t"}, map[string]Bounds{"t": {Lo: 0, Hi: 10}},
		func(params map[string]float64) (float64, error) {
			if params["t"] > 5 {
				return -1, nil
			}
			return 1, nil
		}, Options{})
	require.NoError(t, err)
	require.True(t, result.Satisfied)
	require.LessOrEqual(t, result.NumEvals, gridPoints)
}

func TestSolveRejectsUnregisteredBound(t *testing.T) {
	_, err := Solve([]string{"missing"}, map[string]Bounds{}, func(map[string]float64) (float64, error) { return 0, nil }, Options{})
	require.ErrorIs(t, err, ErrNoParamBounds)
}

func TestESSearchFindsNegativeObjectiveWithinBudget(t *testing.T) {
	bounds := map[string]Bounds{"a": {Lo: -10, Hi: 10}, "b": {Lo: -10, Hi: 10}}
	result, err := Solve([]string{"a", "b"}, bounds,
		func(params map[string]float64) (float64, error) {
			a, b := params["a"], params["b"]
			return a*a + b*b - 50, nil // negative near origin, minimum -50 at (0,0)
		}, Options{MaxEvals: 400, Seed: 7})
	require.NoError(t, err)
	require.True(t, result.Satisfied)
	require.LessOrEqual(t, result.NumEvals, 400)
}

func TestBudgetExhaustionReturnsUnsatisfied(t *testing.T) {
	bounds := map[string]Bounds{"a": {Lo: -10, Hi: 10}, "b": {Lo: -10, Hi: 10}}
	result, err := Solve([]string{"a", "b"}, bounds,
		func(params map[string]float64) (float64, error) { return 100, nil }, // never satisfiable
		Options{MaxTime: time.Millisecond, MaxEvals: 1})
	require.NoError(t, err)
	require.False(t, result.Satisfied)
}
