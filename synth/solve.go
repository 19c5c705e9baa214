package synth

import (
	"fmt"
	"math/rand"
	"time"
)

// Solve dispatches on the number of symbolic parameters: zero evaluates
// the objective once, one runs a grid search, two or more run an
// evolution-strategy search. Every name in paramNames must have an entry
// in bounds.
func Solve(paramNames []string, bounds map[string]Bounds, obj Objective, opts Options) (Result, error) {
	for _, name := range paramNames {
		if _, ok := bounds[name]; !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrNoParamBounds, name)
		}
	}

	switch len(paramNames) {
	case 0:
		return EvaluateDirect(obj), nil
	case 1:
		return gridSearch(paramNames[0], bounds[paramNames[0]], obj, opts), nil
	default:
		seed := opts.Seed
		if seed == 0 {
			seed = 1
		}
		rng := rand.New(rand.NewSource(seed))
		return esSearch(paramNames, bounds, obj, opts, rng), nil
	}
}

// EvaluateDirect is the zero-symbolic-bound fast path: the objective is
// evaluated once with an empty binding.
func EvaluateDirect(obj Objective) Result {
	start := time.Now()
	val, err := obj(map[string]float64{})
	if err != nil {
		val = penaltyValue
	}
	return Result{
		Satisfied:  val < 0,
		ObjBest:    val,
		ParamsBest: map[string]float64{},
		NumEvals:   1,
		TimeSpent:  time.Since(start),
	}
}
