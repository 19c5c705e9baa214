package synth

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxGenerations bounds the evolution-strategy search independently of
// the caller's wall-clock/eval budgets, so a misconfigured Options{} (no
// budget at all) still terminates.
const maxGenerations = 200

// sigmaFloor keeps per-dimension step size from collapsing to zero
// before a budget or first-improvement exit fires.
const sigmaFloor = 1e-6

type candidate struct {
	x []float64
	f float64
}

// esSearch handles the >= 2 symbolic bound case with a covariance-free,
// separable evolution strategy: per-dimension Gaussian sampling, box
// constraints by clamping, (mu/mu, lambda) truncation recombination, and
// geometric step-size shrinkage each generation.
func esSearch(names []string, bounds map[string]Bounds, obj Objective, opts Options, rng *rand.Rand) Result {
	dim := len(names)
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	mean := make([]float64, dim)
	sigma := make([]float64, dim)
	for i, name := range names {
		b := bounds[name]
		lo[i], hi[i] = b.Lo, b.Hi
		mean[i] = (b.Lo + b.Hi) / 2
		sigma[i] = (b.Hi - b.Lo) / 4
	}

	lambda := 4 + int(3*math.Log(float64(dim)))
	if lambda < 4 {
		lambda = 4
	}
	mu := lambda / 2
	if mu < 1 {
		mu = 1
	}

	start := time.Now()
	best := Result{ObjBest: math.MaxFloat64, ParamsBest: paramMap(names, mean)}
	evals := 0

	for gen := 0; gen < maxGenerations; gen++ {
		if budgetExceeded(opts, start, evals) {
			break
		}

		pop := make([]candidate, 0, lambda)
		for i := 0; i < lambda; i++ {
			if budgetExceeded(opts, start, evals) {
				break
			}
			x := make([]float64, dim)
			for d := 0; d < dim; d++ {
				norm := distuv.Normal{Mu: mean[d], Sigma: sigma[d], Src: rng}
				v := norm.Rand()
				if v < lo[d] {
					v = lo[d]
				} else if v > hi[d] {
					v = hi[d]
				}
				x[d] = v
			}

			params := paramMap(names, x)
			val, err := obj(params)
			evals++
			if err != nil {
				val = penaltyValue
			}
			pop = append(pop, candidate{x: x, f: val})

			if val < best.ObjBest {
				best.ObjBest = val
				best.ParamsBest = params
			}
			if val < 0 {
				best.Satisfied = true
			}
		}

		if best.Satisfied || len(pop) == 0 {
			best.NumEvals = evals
			best.TimeSpent = time.Since(start)
			return best
		}

		sort.Slice(pop, func(i, j int) bool { return pop[i].f < pop[j].f })
		top := pop
		if len(pop) > mu {
			top = pop[:mu]
		}

		newMean := make([]float64, dim)
		for _, c := range top {
			floats.Add(newMean, c.x)
		}
		floats.Scale(1/float64(len(top)), newMean)
		mean = newMean

		for d := range sigma {
			sigma[d] *= 0.95
			if sigma[d] < sigmaFloor {
				sigma[d] = sigmaFloor
			}
		}
	}

	best.NumEvals = evals
	best.TimeSpent = time.Since(start)
	return best
}
