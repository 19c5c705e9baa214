package classify

// runNoPrune tests every lattice node in insertion order, independent
// of any other node's outcome. It issues exactly graph.Len() synthesis
// calls and never deactivates a node ahead of its own turn.
func runNoPrune(b *base) error {
	for i := 0; i < b.graph.Len(); i++ {
		if b.cancelled() {
			return b.ctx.Err()
		}
		if _, err := b.testDirect(i); err != nil {
			return err
		}
	}
	return nil
}
