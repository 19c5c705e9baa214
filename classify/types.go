package classify

import (
	"time"

	"github.com/stlrefine/ceclass/lattice"
)

// Strategy selects which of the five classifier control-flows Run
// drives over the parsed lattice.
type Strategy string

const (
	NoPrune  Strategy = "no_prune"
	BFS      Strategy = "bfs"
	AlwMid   Strategy = "alw_mid"
	BSRandom Strategy = "bs_random"
	LongBS   Strategy = "long_bs"
)

// Options configures one classification run. Zero values are replaced
// by defaults (60s / 500 evals per node).
type Options struct {
	DT              float64
	MaxTimePerNode  time.Duration
	MaxEvalsPerNode int
	Seed            int64
}

const (
	defaultMaxTimePerNode  = 60 * time.Second
	defaultMaxEvalsPerNode = 500
	defaultDT              = 1.0
)

func (o Options) withDefaults() Options {
	if o.DT == 0 {
		o.DT = defaultDT
	}
	if o.MaxTimePerNode == 0 {
		o.MaxTimePerNode = defaultMaxTimePerNode
	}
	if o.MaxEvalsPerNode == 0 {
		o.MaxEvalsPerNode = defaultMaxEvalsPerNode
	}
	return o
}

// Result is the record a classification run reports to its caller.
type Result struct {
	NumClasses    int
	NumCovered    int
	TimeSplit     time.Duration
	TimeClass     time.Duration
	TimeTotal     time.Duration
	NumSynthCalls int
	CoveredNodes  []lattice.NodeView
}
