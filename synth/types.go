package synth

import "time"

// Bounds is a concrete numeric interval a symbolic parameter is searched
// over. It mirrors lattice.Bounds but keeps this package independent of
// the lattice package's types.
type Bounds struct {
	Lo, Hi float64
}

// Objective evaluates f(β) = min_t robustness(¬ψ[β], trace_t) for one
// parameter binding: f < 0 iff some trace falsifies ¬ψ[β], i.e. satisfies
// ψ[β]. A non-nil error is a synthesis-kernel transient: Solve recovers
// it into a large penalty and continues the search.
type Objective func(params map[string]float64) (float64, error)

// Options bounds a single Solve call.
type Options struct {
	MaxTime  time.Duration // <= 0 means unbounded
	MaxEvals int           // <= 0 means unbounded
	Seed     int64         // entropy source for the evolution-strategy search
}

// Result is the outcome of one Solve call against one refined formula.
type Result struct {
	Satisfied  bool
	ObjBest    float64
	ParamsBest map[string]float64
	NumEvals   int
	TimeSpent  time.Duration
}

// penaltyValue is assigned to a candidate when Objective returns an
// error, keeping the search away from that region without aborting it.
const penaltyValue = 1e9

func budgetExceeded(opts Options, start time.Time, evals int) bool {
	if opts.MaxEvals > 0 && evals >= opts.MaxEvals {
		return true
	}
	if opts.MaxTime > 0 && time.Since(start) >= opts.MaxTime {
		return true
	}
	return false
}

func paramMap(names []string, values []float64) map[string]float64 {
	m := make(map[string]float64, len(names))
	for i, name := range names {
		m[name] = values[i]
	}
	return m
}
