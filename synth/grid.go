package synth

import (
	"math"
	"time"
)

// gridPoints is the number of evenly spaced samples the one-parameter
// search tries across [lo, hi], per spec.
const gridPoints = 20

// gridSearch handles the one-symbolic-bound case: an evenly spaced scan
// with an early exit the first time the objective goes negative.
func gridSearch(name string, b Bounds, obj Objective, opts Options) Result {
	start := time.Now()
	best := Result{ObjBest: math.MaxFloat64, ParamsBest: map[string]float64{name: b.Lo}}

	step := (b.Hi - b.Lo) / float64(gridPoints-1)
	for i := 0; i < gridPoints; i++ {
		if budgetExceeded(opts, start, best.NumEvals) {
			break
		}
		v := b.Lo + float64(i)*step
		params := map[string]float64{name: v}

		val, err := obj(params)
		best.NumEvals++
		if err != nil {
			val = penaltyValue
		}
		if val < best.ObjBest {
			best.ObjBest = val
			best.ParamsBest = params
		}
		if val < 0 {
			best.Satisfied = true
			break
		}
	}

	best.TimeSpent = time.Since(start)
	return best
}
