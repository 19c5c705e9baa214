package classify

import "math"

// runLongBS is the favored strategy: recompute the longest active
// path, then run a classical binary search over its positions,
// narrowing toward weaker formulas on SAT and stronger ones on UNSAT,
// bounding the number of tests per outer iteration by
// floor(log2(len)) + 1.
func runLongBS(b *base) error {
	for !b.graph.IsEmpty() {
		if b.cancelled() {
			return b.ctx.Err()
		}
		path, length := b.graph.LongestPath()
		if length == 0 {
			break
		}

		istart, iend := 0, length-1
		for istart <= iend {
			if b.cancelled() {
				return b.ctx.Err()
			}
			mid := int(math.Ceil(float64(istart+iend) / 2))
			idx := path[mid]
			satisfied, err := b.testAndPrune(idx)
			if err != nil {
				return err
			}
			if satisfied {
				istart = mid + 1
			} else {
				iend = mid - 1
			}
		}
	}
	return nil
}
