package classify

// runAlwMid repeatedly recomputes the longest active path and tests
// its midpoint, applying upward or downward closure after each test,
// until the lattice is empty.
func runAlwMid(b *base) error {
	for !b.graph.IsEmpty() {
		if b.cancelled() {
			return b.ctx.Err()
		}
		path, length := b.graph.LongestPath()
		if length == 0 {
			break
		}
		idx := path[midpointIndex(length)]
		if _, err := b.testAndPrune(idx); err != nil {
			return err
		}
	}
	return nil
}
