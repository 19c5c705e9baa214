package refkernel

import (
	"runtime"
	"sync"

	"github.com/stlrefine/ceclass/robustness"
	"github.com/stlrefine/ceclass/tracedata"
)

// StandardKernel is the reference robustness.Kernel implementation. It
// carries no state of its own; every build call returns an immutable
// node value.
type StandardKernel struct{}

var _ robustness.Kernel = StandardKernel{}

func (StandardKernel) Leaf(op robustness.Comparator, signalIndex int, threshold float64) robustness.Formula {
	return leaf{op: op, index: signalIndex, threshold: threshold}
}

func (StandardKernel) Not(f robustness.Formula) robustness.Formula {
	return notNode{child: f.(node)}
}

func (StandardKernel) And(a, b robustness.Formula) robustness.Formula {
	return andNode{a: a.(node), b: b.(node)}
}

func (StandardKernel) Or(a, b robustness.Formula) robustness.Formula {
	return orNode{a: a.(node), b: b.(node)}
}

func (StandardKernel) Always(f robustness.Formula, loStep, hiStep int) robustness.Formula {
	return alwaysNode{child: f.(node), lo: loStep, hi: hiStep}
}

func (StandardKernel) Eventually(f robustness.Formula, loStep, hiStep int) robustness.Formula {
	return eventuallyNode{child: f.(node), lo: loStep, hi: hiStep}
}

// Evaluate computes one robustness value per trace, at step 0 of the
// formula, distributing traces across a worker pool bounded by
// GOMAXPROCS — the kernel's internal parallelism is opaque to the
// classifier and synthesis callers above it.
func (StandardKernel) Evaluate(f robustness.Formula, batch tracedata.Batch) []float64 {
	n := f.(node)
	out := make([]float64, batch.NumTraces)

	workers := runtime.GOMAXPROCS(0)
	if workers > batch.NumTraces {
		workers = batch.NumTraces
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for trace := range jobs {
				out[trace] = rho(n, batch, trace, 0)
			}
		}()
	}
	for trace := 0; trace < batch.NumTraces; trace++ {
		jobs <- trace
	}
	close(jobs)
	wg.Wait()

	return out
}
