package robustness

import (
	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/tracedata"
)

// Comparator names a predicate's relational operator. It is the same
// closed pair formula.Op uses, reused here so a Kernel implementation
// never has to import the formula package's tree types directly.
type Comparator = formula.Op

// Formula is whatever representation a Kernel builds internally; the
// adapter never inspects it, only threads it back through the same
// Kernel's other methods.
type Formula any

// Kernel is the black-box robustness engine the adapter targets: build a
// leaf, build each interior connective, evaluate the assembled formula
// over a trace batch. loStep/hiStep are inclusive integer step offsets
// already converted from continuous time via dt.
type Kernel interface {
	Leaf(op Comparator, signalIndex int, threshold float64) Formula
	Not(f Formula) Formula
	And(a, b Formula) Formula
	Or(a, b Formula) Formula
	Always(f Formula, loStep, hiStep int) Formula
	Eventually(f Formula, loStep, hiStep int) Formula

	// Evaluate returns one robustness value per trace in batch.
	Evaluate(f Formula, batch tracedata.Batch) []float64
}
