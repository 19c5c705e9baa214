package lattice

import "math/rand"

// Graph (the refinement lattice, "PhiGraph") owns every Node by index and
// derives the list of maxima: active nodes with no active immediate
// ancestor. See doc.go for the arena ownership rationale.
type Graph struct {
	nodes       []*Node
	index       map[string]int
	maxima      []int
	ParamBounds map[string]Bounds

	longestVal int
	longestSeq []int
}

// newGraph wraps a fully-built node slice (edges already attached) into a
// Graph and computes the Hasse reduction + maxima. Unexported: only the
// Parser constructs a Graph, so the package's invariants (acyclic,
// deduplicated, reduced) hold by construction.
func newGraph(nodes []*Node, paramBounds map[string]Bounds) *Graph {
	g := &Graph{nodes: nodes, ParamBounds: paramBounds, index: make(map[string]int, len(nodes))}
	for i, n := range nodes {
		g.index[n.ID()] = i
	}
	g.setImmediate()
	g.setMaxima()
	return g
}

// Nodes returns the full node arena. Callers must not retain indices
// across a second Parse call; each Graph owns its own arena.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Node returns the node at index i.
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Len returns the number of lattice nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// IndexOf returns the arena index of the node with the given formula ID.
func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Maxima returns the indices of the current active maxima.
func (g *Graph) Maxima() []int { return g.maxima }

// setImmediate computes greaterImme/smallerImme from greaterAll/smallerAll
// via iterative minimum-peeling transitive reduction: repeatedly find
// nodes whose smaller_all contains only themselves (or is empty),
// promote (p, m) to an immediate edge when no intermediate exists in
// smaller_all(p) ∩ greater_all(m), remove each such
// m from the working set and from every remaining smaller_all(p), and
// stop once the working set has <= 1 element. Runs once at construction
// time over a saved copy of smaller_all so the working removals never
// corrupt the all-relation the Graph exposes afterwards.
func (g *Graph) setImmediate() {
	n := len(g.nodes)
	if n == 0 {
		return
	}
	working := make([]int, n)
	for i := range working {
		working[i] = i
	}
	// workingSmaller[i] is node i's smaller_all restricted to the nodes
	// still present in `working`; it shrinks as minima are peeled off.
	workingSmaller := make(map[int][]int, n)
	for i, nd := range g.nodes {
		cp := make([]int, len(nd.smallerAll))
		copy(cp, nd.smallerAll)
		workingSmaller[i] = cp
	}

	for {
		var minima []int
		for _, i := range working {
			if len(workingSmaller[i]) == 0 {
				minima = append(minima, i)
			}
		}
		if len(minima) == 0 {
			// Acyclicity guarantees at least one node with no remaining
			// smaller neighbor exists at every iteration; if none is
			// found, the working set cannot shrink further.
			break
		}
		minSet := make(map[int]bool, len(minima))
		for _, m := range minima {
			minSet[m] = true
		}
		var remaining []int
		for _, i := range working {
			if !minSet[i] {
				remaining = append(remaining, i)
			}
		}

		for _, m := range minima {
			for _, nn := range remaining {
				if !containsInt(workingSmaller[nn], m) {
					continue
				}
				flag := false
				for _, sn := range workingSmaller[nn] {
					if sn == nn || sn == m {
						continue
					}
					if containsInt(g.nodes[m].greaterAll, sn) {
						flag = true
						break
					}
				}
				if !flag {
					g.nodes[nn].smallerImme = addUnique(g.nodes[nn].smallerImme, m, nn)
					g.nodes[m].greaterImme = addUnique(g.nodes[m].greaterImme, nn, m)
				}
				workingSmaller[nn] = removeInt(workingSmaller[nn], m)
			}
		}

		working = remaining
		if len(working) <= 1 {
			break
		}
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(s []int, v int) []int {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// setMaxima recomputes Maxima from scratch (no activity filter): nodes
// with empty greaterImme.
func (g *Graph) setMaxima() {
	g.maxima = g.maxima[:0]
	for i, nd := range g.nodes {
		if len(nd.greaterImme) == 0 {
			g.maxima = append(g.maxima, i)
		}
	}
}

// setActiveMaxima recomputes Maxima restricted to active nodes with no
// active immediate ancestor.
func (g *Graph) setActiveMaxima() {
	g.maxima = g.maxima[:0]
	for i, nd := range g.nodes {
		if !nd.Active {
			continue
		}
		hasActiveAncestor := false
		for _, gi := range nd.greaterImme {
			if g.nodes[gi].Active {
				hasActiveAncestor = true
				break
			}
		}
		if !hasActiveAncestor {
			g.maxima = append(g.maxima, i)
		}
	}
}

// LongestPath returns the longest sequence of active nodes reachable by
// following greaterImme -> smallerImme edges from an active maximum, via
// DFS. Ties are broken by visitation order (maxima order, then
// smallerImme order). Returns (nil, 0) if no active maximum exists.
func (g *Graph) LongestPath() ([]int, int) {
	g.longestVal = 0
	g.longestSeq = nil
	for _, m := range g.maxima {
		if g.nodes[m].Active {
			g.dfsLongest([]int{m}, m, 1)
		}
	}
	return g.longestSeq, g.longestVal
}

func (g *Graph) dfsLongest(seq []int, node int, val int) {
	if !g.nodes[node].Active {
		return
	}
	if val > g.longestVal {
		g.longestVal = val
		g.longestSeq = append([]int(nil), seq...)
	}
	for _, s := range g.nodes[node].smallerImme {
		if g.nodes[s].Active {
			g.dfsLongest(append(seq, s), s, val+1)
		}
	}
}

// RandomPath starts at a uniformly-chosen active maximum and repeatedly
// picks a uniformly-random active immediate successor until none remains.
// rng must be supplied by the caller so runs are reproducible under a
// fixed seed.
func (g *Graph) RandomPath(rng *rand.Rand) ([]int, int) {
	var path []int
	pool := g.maxima
	for {
		var active []int
		for _, p := range pool {
			if g.nodes[p].Active {
				active = append(active, p)
			}
		}
		if len(active) == 0 {
			break
		}
		selected := active[rng.Intn(len(active))]
		path = append(path, selected)
		pool = g.nodes[selected].smallerImme
	}
	return path, len(path)
}

// EliminateHold marks node idx inactive because it was proven satisfied
// (a counterexample witness was found), attaches witness, and recurses
// upward over greaterImme (every weaker formula is also satisfied).
// Recomputes maxima afterwards.
func (g *Graph) EliminateHold(idx int, witness Witness) {
	g.eliminateHold(idx, witness)
	g.setActiveMaxima()
}

func (g *Graph) eliminateHold(idx int, witness Witness) {
	nd := g.nodes[idx]
	if !nd.Active {
		return
	}
	nd.Active = false
	nd.Witnesses = append(nd.Witnesses, witness)
	for _, gi := range nd.greaterImme {
		g.eliminateHold(gi, witness)
	}
}

// EliminateUnhold marks node idx inactive because it was refuted, and
// recurses downward over smallerImme (every stronger formula is also
// refuted). Recomputes maxima afterwards.
func (g *Graph) EliminateUnhold(idx int) {
	g.eliminateUnhold(idx)
	g.setActiveMaxima()
}

func (g *Graph) eliminateUnhold(idx int) {
	nd := g.nodes[idx]
	if !nd.Active {
		return
	}
	nd.Active = false
	for _, si := range nd.smallerImme {
		g.eliminateUnhold(si)
	}
}

// IsEmpty reports whether any active node remains.
func (g *Graph) IsEmpty() bool {
	for _, nd := range g.nodes {
		if nd.Active {
			return false
		}
	}
	return true
}

// CoveredNodes returns the indices of nodes (active or not) carrying at
// least one witness.
func (g *Graph) CoveredNodes() []int {
	var out []int
	for i, nd := range g.nodes {
		if len(nd.Witnesses) > 0 {
			out = append(out, i)
		}
	}
	return out
}

// NodeSummary is a dependency-free introspection record for a lattice
// node, suitable for external visualization tooling; plotting itself
// is out of scope here, this is just the data.
type NodeSummary struct {
	ID       string
	Formula  string
	Active   bool
	Covered  bool
}

// NodeView is the external-facing alias for NodeSummary; it is the
// element type classify.Result.CoveredNodes exposes to callers outside
// the lattice package.
type NodeView = NodeSummary

// Export returns the node/edge summary of the lattice: every node's
// identity and status, plus the immediate-edge (Hasse) list as
// (greater, smaller) ID pairs.
func (g *Graph) Export() (nodes []NodeSummary, edges [][2]string) {
	nodes = make([]NodeSummary, len(g.nodes))
	for i, nd := range g.nodes {
		nodes[i] = NodeSummary{
			ID:      nd.ID(),
			Formula: nd.Formula.String(),
			Active:  nd.Active,
			Covered: len(nd.Witnesses) > 0,
		}
		for _, s := range nd.smallerImme {
			edges = append(edges, [2]string{nd.ID(), g.nodes[s].ID()})
		}
	}
	return nodes, edges
}
