package classify

// runBFS explores the lattice breadth-first from the maxima downward.
// A satisfied node's immediate stronger refinements (smallerImme) are
// queued to look for a more specific witness; satisfaction is never
// propagated to ancestors, so a diamond's other branch is still tested
// independently when the frontier reaches it. A refuted node's entire
// downward closure is already inactive after testBFS's EliminateUnhold
// call, so nothing further is queued for it.
func runBFS(b *base) error {
	queue := append([]int(nil), b.graph.Maxima()...)
	enqueued := make(map[int]bool, len(queue))
	for _, m := range queue {
		enqueued[m] = true
	}

	for len(queue) > 0 {
		if b.cancelled() {
			return b.ctx.Err()
		}
		idx := queue[0]
		queue = queue[1:]
		node := b.graph.Node(idx)
		if !node.Active {
			continue
		}

		satisfied, err := b.testBFS(idx)
		if err != nil {
			return err
		}
		if satisfied {
			for _, s := range node.SmallerImme() {
				if !enqueued[s] {
					enqueued[s] = true
					queue = append(queue, s)
				}
			}
		}
	}
	return nil
}
