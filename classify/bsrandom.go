package classify

// runBSRandom mirrors runAlwMid but samples its path by a random walk
// from a random active maximum instead of the deterministic longest
// path.
func runBSRandom(b *base) error {
	for !b.graph.IsEmpty() {
		if b.cancelled() {
			return b.ctx.Err()
		}
		path, length := b.graph.RandomPath(b.rng)
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
