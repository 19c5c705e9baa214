package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/stlrefine/ceclass/formula"
	"github.com/stlrefine/ceclass/lattice"
	"github.com/stlrefine/ceclass/robustness"
	"github.com/stlrefine/ceclass/tracedata"
)

// Run parses root into a lattice (depth spec k), then classifies the
// given trace batch against it under the chosen strategy. Every
// strategy shares the same parse -> init -> loop -> build-result
// shape; only the loop differs.
func Run(ctx context.Context, root *formula.Node, k lattice.DepthSpec, kernel robustness.Kernel, batch tracedata.Batch, strategy Strategy, opts Options) (Result, error) {
	opts = opts.withDefaults()

	splitStart := time.Now()
	graph, err := lattice.Parse(root, k)
	if err != nil {
		return Result{}, err
	}
	timeSplit := time.Since(splitStart)

	b := newBase(ctx, graph, kernel, batch, opts)

	classStart := time.Now()
	var runErr error
	switch strategy {
	case NoPrune:
		runErr = runNoPrune(b)
	case BFS:
		runErr = runBFS(b)
	case AlwMid:
		runErr = runAlwMid(b)
	case BSRandom:
		runErr = runBSRandom(b)
	case LongBS:
		runErr = runLongBS(b)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	timeClass := time.Since(classStart)
	if runErr != nil {
		return Result{}, runErr
	}

	return b.buildResult(timeSplit, timeClass), nil
}
