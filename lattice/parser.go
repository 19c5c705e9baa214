package lattice

import (
	"strconv"
	"strings"

	"github.com/stlrefine/ceclass/formula"
)

// phiEdge is the raw (pre-dedup) implication edge emitted by edge
// generation, oriented as Node's neighbor sets are: greater is the
// weaker endpoint, smaller the stronger one.
type phiEdge struct {
	greater, smaller string
}

// parser carries the mutable state threaded through one Parse call: the
// simplify map (raw formula ID -> simplified formula ID), the formula map
// (simplified ID -> canonical tree), and the interval dictionary
// (symbolic bound name -> inherited numeric range).
type parser struct {
	simplify  map[string]string
	formulaOf map[string]*formula.Node
	interval  map[string]Bounds
}

// Parse builds the refinement lattice for root under depth spec k: it
// generates refined-formula candidates under positive/negative polarity,
// deduplicates by simplified formula identifier, generates implication
// edges, connects them to the deduplicated nodes, and reduces the
// transitive closure to its Hasse diagram.
func Parse(root *formula.Node, k DepthSpec) (*Graph, error) {
	if err := validateDepthSpec(root, k); err != nil {
		return nil, err
	}

	p := &parser{
		simplify:  make(map[string]string),
		formulaOf: make(map[string]*formula.Node),
		interval:  make(map[string]Bounds),
	}

	// Node generation starts in negative polarity at the root, matching
	// the reference implementation's top-level entry point.
	rawCandidates := p.parseNodesNeg(root, k)

	var simpPhis []*Node
	simpIndex := make(map[string]int)
	for _, raw := range rawCandidates {
		simpID := p.simplify[raw.ID]
		if _, seen := simpIndex[simpID]; seen {
			continue
		}
		simpIndex[simpID] = len(simpPhis)
		simpPhis = append(simpPhis, &Node{Formula: p.formulaOf[simpID], Active: true})
	}

	edges := p.parseEdgesNeg(root, k)
	for _, e := range edges {
		greaterSimp, ok1 := p.simplify[e.greater]
		smallerSimp, ok2 := p.simplify[e.smaller]
		if !ok1 || !ok2 {
			continue
		}
		gi, ok1 := simpIndex[greaterSimp]
		si, ok2 := simpIndex[smallerSimp]
		if !ok1 || !ok2 {
			continue
		}
		gn, sn := simpPhis[gi], simpPhis[si]
		gn.smallerAll = addUnique(gn.smallerAll, si, gi)
		sn.greaterAll = addUnique(sn.greaterAll, gi, si)
	}

	return newGraph(simpPhis, p.interval), nil
}

// ParamBoundsFor restricts a Graph's full interval dictionary to the
// symbolic bound names actually appearing in node's formula.
func ParamBoundsFor(g *Graph, node *Node) map[string]Bounds {
	names := formula.ParamNames(node.Formula)
	bounds := make(map[string]Bounds, len(names))
	for _, name := range names {
		if b, ok := g.ParamBounds[name]; ok {
			bounds[name] = b
		}
	}
	return bounds
}

// ============================================================================
// Node generation — positive polarity
// ============================================================================

func (p *parser) parseNodesPos(phi *formula.Node, k DepthSpec) []*formula.Node {
	switch phi.Kind {
	case formula.KindPredicate:
		return p.parsePredicate(phi, "FALSE")
	case formula.KindNot:
		return p.parseNot(phi, k, p.parseNodesNeg, "PosNot_")
	case formula.KindAnd:
		return p.combineBinary("PosAnd_", formula.And, p.simplifyAnd,
			p.parseNodesPos(phi.Left, k.Sub[0]), p.parseNodesPos(phi.Right, k.Sub[1]))
	case formula.KindOr:
		return p.combineBinary("PosOr_", formula.Or, p.simplifyOr,
			p.parseNodesPos(phi.Left, k.Sub[0]), p.parseNodesPos(phi.Right, k.Sub[1]))
	case formula.KindAlways:
		return p.parseTemporal(phi, k, "Pos", true, p.parseNodesPos)
	case formula.KindEventually:
		return p.parseTemporal(phi, k, "Pos", false, p.parseNodesPos)
	default:
		return nil
	}
}

// ============================================================================
// Node generation — negative polarity
// ============================================================================

func (p *parser) parseNodesNeg(phi *formula.Node, k DepthSpec) []*formula.Node {
	switch phi.Kind {
	case formula.KindPredicate:
		return p.parsePredicate(phi, "TRUE")
	case formula.KindNot:
		return p.parseNot(phi, k, p.parseNodesPos, "NegNot_")
	case formula.KindAnd:
		return p.combineBinary("NegAnd_", formula.And, p.simplifyAnd,
			p.parseNodesNeg(phi.Left, k.Sub[0]), p.parseNodesNeg(phi.Right, k.Sub[1]))
	case formula.KindOr:
		return p.combineBinary("NegOr_", formula.Or, p.simplifyOr,
			p.parseNodesNeg(phi.Left, k.Sub[0]), p.parseNodesNeg(phi.Right, k.Sub[1]))
	case formula.KindAlways:
		return p.parseTemporal(phi, k, "Neg", true, p.parseNodesNeg)
	case formula.KindEventually:
		return p.parseTemporal(phi, k, "Neg", false, p.parseNodesNeg)
	default:
		return nil
	}
}

// parsePredicate emits the predicate itself plus the degenerate sentinel
// (FALSE in positive polarity, TRUE in negative polarity).
func (p *parser) parsePredicate(phi *formula.Node, sentinel string) []*formula.Node {
	p.simplify[phi.ID] = phi.ID
	p.formulaOf[phi.ID] = phi

	var s *formula.Node
	if sentinel == "FALSE" {
		s = formula.False()
	} else {
		s = formula.True()
	}
	p.simplify[sentinel] = sentinel
	p.formulaOf[sentinel] = s

	return []*formula.Node{phi, s}
}

// parseNot recurses into the opposite polarity for the child, wraps every
// candidate in a fresh Not, and simplifies not(TRUE)/not(FALSE).
func (p *parser) parseNot(phi *formula.Node, k DepthSpec, recurse func(*formula.Node, DepthSpec) []*formula.Node, prefix string) []*formula.Node {
	childNodes := recurse(phi.Child, k.Sub[0])
	result := make([]*formula.Node, 0, len(childNodes))
	for _, c := range childNodes {
		newID := prefix + c.ID
		newFormula, _ := formula.Not(c, newID)
		result = append(result, newFormula)

		childSimp := p.simplify[c.ID]
		var simplifiedID string
		switch childSimp {
		case "FALSE":
			simplifiedID = "TRUE"
			p.formulaOf["TRUE"] = formula.True()
		case "TRUE":
			simplifiedID = "FALSE"
			p.formulaOf["FALSE"] = formula.False()
		default:
			simplifiedID = prefix + childSimp
			notted, _ := formula.Not(p.formulaOf[childSimp], simplifiedID)
			p.formulaOf[simplifiedID] = notted
		}
		p.simplify[newID] = simplifiedID
	}
	return result
}

// ============================================================================
// Binary AND/OR combination (shared by both polarities)
// ============================================================================

type binaryFactory func(left, right *formula.Node, id string) (*formula.Node, error)
type binarySimplifier func(leftSimp, rightSimp, prefix string) (string, *formula.Node)

func (p *parser) combineBinary(prefix string, build binaryFactory, simplify binarySimplifier, nodes1, nodes2 []*formula.Node) []*formula.Node {
	result := make([]*formula.Node, 0, len(nodes1)*len(nodes2))
	for _, n1 := range nodes1 {
		for _, n2 := range nodes2 {
			newID := prefix + n1.ID + n2.ID
			newFormula, _ := build(n1, n2, newID)
			result = append(result, newFormula)

			simpID, simpFormula := simplify(p.simplify[n1.ID], p.simplify[n2.ID], prefix)
			p.simplify[newID] = simpID
			p.formulaOf[simpID] = simpFormula
		}
	}
	return result
}

func (p *parser) simplifyAnd(left, right, prefix string) (string, *formula.Node) {
	switch {
	case left == "FALSE" || right == "FALSE":
		return "FALSE", formula.False()
	case left == "TRUE" && right == "TRUE":
		return "TRUE", formula.True()
	case left == "TRUE":
		return right, p.formulaOf[right]
	case right == "TRUE":
		return left, p.formulaOf[left]
	default:
		sid := prefix + left + right
		f, _ := formula.And(p.formulaOf[left], p.formulaOf[right], sid)
		return sid, f
	}
}

func (p *parser) simplifyOr(left, right, prefix string) (string, *formula.Node) {
	switch {
	case left == "TRUE" || right == "TRUE":
		return "TRUE", formula.True()
	case left == "FALSE" && right == "FALSE":
		return "FALSE", formula.False()
	case left == "FALSE":
		return right, p.formulaOf[right]
	case right == "FALSE":
		return left, p.formulaOf[left]
	default:
		sid := prefix + left + right
		f, _ := formula.Or(p.formulaOf[left], p.formulaOf[right], sid)
		return sid, f
	}
}

// ============================================================================
// Temporal operator handling (Always / Eventually, both polarities)
// ============================================================================

func (p *parser) parseTemporal(phi *formula.Node, k DepthSpec, polarity string, isAlways bool, recurse func(*formula.Node, DepthSpec) []*formula.Node) []*formula.Node {
	childNodes := recurse(phi.Child, k.Sub[0])

	if !phi.Span.Lo.Symbolic && !phi.Span.Hi.Symbolic {
		p.interval[phi.ID+"____"] = Bounds{Lo: phi.Span.Lo.Value, Hi: phi.Span.Hi.Value}
	}

	queue := cartesianPower(childNodes, k.Split)

	if isAlways {
		return p.buildAlwaysNodes(queue, phi.ID, phi.Span.Lo, phi.Span.Hi, polarity)
	}
	return p.buildEventuallyNodes(queue, phi.ID, phi.Span.Lo, phi.Span.Hi, polarity)
}

// cartesianPower returns items^power as rows, e.g. for items=[a,b], power=2:
// [[a,a],[a,b],[b,a],[b,b]].
func cartesianPower(items []*formula.Node, power int) [][]*formula.Node {
	queue := make([][]*formula.Node, len(items))
	for i, it := range items {
		queue[i] = []*formula.Node{it}
	}
	for len(queue[0]) < power {
		next := make([][]*formula.Node, 0, len(queue)*len(items))
		for _, row := range queue {
			for _, it := range items {
				grown := make([]*formula.Node, len(row)+1)
				copy(grown, row)
				grown[len(row)] = it
				next = append(next, grown)
			}
		}
		queue = next
	}
	return queue
}

func (p *parser) registerParamBound(name, phiID string, tStart, tEnd formula.Bound) {
	baseKey := phiID + "____"
	if b, ok := p.interval[baseKey]; ok {
		p.interval[name] = b
		return
	}
	if !tStart.Symbolic && !tEnd.Symbolic {
		p.interval[name] = Bounds{Lo: tStart.Value, Hi: tEnd.Value}
	}
}

func (p *parser) buildAlwaysNodes(queue [][]*formula.Node, phiID string, tStart, tEnd formula.Bound, polarity string) []*formula.Node {
	result := make([]*formula.Node, 0, len(queue))
	colSize := len(queue[0])

	for _, row := range queue {
		idParts := []string{polarity + "Alw_"}
		simpIDParts := []string{polarity + "Alw_"}
		simpFixedFalse := false
		simpExistNonTrue := false
		var phiSet, simpPhiSet []*formula.Node

		for j, pn := range row {
			pSimpID := p.simplify[pn.ID]
			if pSimpID == "FALSE" {
				simpFixedFalse = true
			} else if pSimpID != "TRUE" {
				simpExistNonTrue = true
			}

			tst, ted := p.segmentBounds(phiID, j, colSize, tStart, tEnd)

			alwNode, _ := formula.Always(pn, formula.Interval{Lo: tst, Hi: ted}, "Alw"+pn.ID)
			idParts = append(idParts, pn.ID)
			phiSet = append(phiSet, alwNode)

			if pSimpID != "TRUE" && pSimpID != "FALSE" {
				simpIDParts = append(simpIDParts, tagSegment(pSimpID, j, colSize))
				simpAlw, _ := formula.Always(p.formulaOf[pSimpID], formula.Interval{Lo: tst, Hi: ted}, "Alw"+pSimpID)
				simpPhiSet = append(simpPhiSet, simpAlw)
			}
		}

		fullID := strings.Join(idParts, "")
		result = append(result, p.chainAnd(phiSet, fullID))

		var simplifiedID string
		switch {
		case simpFixedFalse:
			simplifiedID = "FALSE"
			p.formulaOf["FALSE"] = formula.False()
		case !simpExistNonTrue:
			simplifiedID = "TRUE"
			p.formulaOf["TRUE"] = formula.True()
		default:
			simplifiedID = strings.Join(simpIDParts, "")
			p.formulaOf[simplifiedID] = p.chainAnd(simpPhiSet, simplifiedID)
		}
		p.simplify[fullID] = simplifiedID
	}
	return result
}

func (p *parser) buildEventuallyNodes(queue [][]*formula.Node, phiID string, tStart, tEnd formula.Bound, polarity string) []*formula.Node {
	result := make([]*formula.Node, 0, len(queue))
	colSize := len(queue[0])

	for _, row := range queue {
		idParts := []string{polarity + "Ev_"}
		simpIDParts := []string{polarity + "Ev_"}
		simpFixedTrue := false
		simpExistNonFalse := false
		var phiSet, simpPhiSet []*formula.Node

		for j, pn := range row {
			pSimpID := p.simplify[pn.ID]
			if pSimpID == "TRUE" {
				simpFixedTrue = true
			} else if pSimpID != "FALSE" {
				simpExistNonFalse = true
			}

			tst, ted := p.segmentBounds(phiID, j, colSize, tStart, tEnd)

			evNode, _ := formula.Eventually(pn, formula.Interval{Lo: tst, Hi: ted}, "Ev"+pn.ID)
			idParts = append(idParts, pn.ID)
			phiSet = append(phiSet, evNode)

			if pSimpID != "TRUE" && pSimpID != "FALSE" {
				simpIDParts = append(simpIDParts, tagSegment(pSimpID, j, colSize))
				simpEv, _ := formula.Eventually(p.formulaOf[pSimpID], formula.Interval{Lo: tst, Hi: ted}, "Ev"+pSimpID)
				simpPhiSet = append(simpPhiSet, simpEv)
			}
		}

		fullID := strings.Join(idParts, "")
		result = append(result, p.chainOr(phiSet, fullID))

		var simplifiedID string
		switch {
		case simpFixedTrue:
			simplifiedID = "TRUE"
			p.formulaOf["TRUE"] = formula.True()
		case !simpExistNonFalse:
			simplifiedID = "FALSE"
			p.formulaOf["FALSE"] = formula.False()
		default:
			simplifiedID = strings.Join(simpIDParts, "")
			p.formulaOf[simplifiedID] = p.chainOr(simpPhiSet, simplifiedID)
		}
		p.simplify[fullID] = simplifiedID
	}
	return result
}

// segmentBounds computes the (possibly symbolic) endpoints of segment j of
// colSize, registering any fresh symbolic endpoint in the interval
// dictionary, and returns them for reuse by the non-simplified and
// simplified formula trees alike.
func (p *parser) segmentBounds(phiID string, j, colSize int, tStart, tEnd formula.Bound) (formula.Bound, formula.Bound) {
	var tst, ted formula.Bound
	if j == 0 {
		tst = tStart
	} else {
		tst = formula.Symbol(phiID + "____t" + strconv.Itoa(j+1))
	}
	if j == colSize-1 {
		ted = tEnd
	} else {
		ted = formula.Symbol(phiID + "____t" + strconv.Itoa(j+2))
	}
	if tst.Symbolic {
		if _, ok := p.interval[tst.Name]; !ok {
			p.registerParamBound(tst.Name, phiID, tStart, tEnd)
		}
	}
	if ted.Symbolic {
		if _, ok := p.interval[ted.Name]; !ok {
			p.registerParamBound(ted.Name, phiID, tStart, tEnd)
		}
	}
	return tst, ted
}

func tagSegment(simpID string, j, colSize int) string {
	switch {
	case j == 0:
		return "st" + simpID
	case j == colSize-1:
		return "ed" + simpID
	default:
		return simpID
	}
}

func (p *parser) chainAnd(nodes []*formula.Node, id string) *formula.Node {
	if len(nodes) == 0 {
		return formula.True()
	}
	if len(nodes) == 1 {
		return formula.WithID(nodes[0], id)
	}
	result := nodes[0]
	for i := 1; i < len(nodes); i++ {
		midID := id
		if i != len(nodes)-1 {
			midID = id + "__p" + strconv.Itoa(i)
		}
		result, _ = formula.And(result, nodes[i], midID)
	}
	return result
}

func (p *parser) chainOr(nodes []*formula.Node, id string) *formula.Node {
	if len(nodes) == 0 {
		return formula.False()
	}
	if len(nodes) == 1 {
		return formula.WithID(nodes[0], id)
	}
	result := nodes[0]
	for i := 1; i < len(nodes); i++ {
		midID := id
		if i != len(nodes)-1 {
			midID = id + "__p" + strconv.Itoa(i)
		}
		result, _ = formula.Or(result, nodes[i], midID)
	}
	return result
}

// ============================================================================
// Edge generation — positive polarity
// ============================================================================

func (p *parser) parseEdgesPos(phi *formula.Node, k DepthSpec) []phiEdge {
	switch phi.Kind {
	case formula.KindPredicate:
		return []phiEdge{{phi.ID, phi.ID}, {phi.ID, "FALSE"}, {"FALSE", "FALSE"}}
	case formula.KindNot:
		return prefixEdges("PosNot_", p.parseEdgesNeg(phi.Child, k.Sub[0]))
	case formula.KindAnd:
		return combineEdges("PosAnd_", p.parseEdgesPos(phi.Left, k.Sub[0]), p.parseEdgesPos(phi.Right, k.Sub[1]))
	case formula.KindOr:
		return combineEdges("PosOr_", p.parseEdgesPos(phi.Left, k.Sub[0]), p.parseEdgesPos(phi.Right, k.Sub[1]))
	case formula.KindAlways:
		return p.parseTemporalEdges(phi, k, "PosAlw", true)
	case formula.KindEventually:
		return p.parseTemporalEdges(phi, k, "PosEv", true)
	default:
		return nil
	}
}

// ============================================================================
// Edge generation — negative polarity
// ============================================================================

func (p *parser) parseEdgesNeg(phi *formula.Node, k DepthSpec) []phiEdge {
	switch phi.Kind {
	case formula.KindPredicate:
		return []phiEdge{{phi.ID, phi.ID}, {phi.ID, "TRUE"}, {"TRUE", "TRUE"}}
	case formula.KindNot:
		return prefixEdges("NegNot_", p.parseEdgesPos(phi.Child, k.Sub[0]))
	case formula.KindAnd:
		return combineEdges("NegAnd_", p.parseEdgesNeg(phi.Left, k.Sub[0]), p.parseEdgesNeg(phi.Right, k.Sub[1]))
	case formula.KindOr:
		return combineEdges("NegOr_", p.parseEdgesNeg(phi.Left, k.Sub[0]), p.parseEdgesNeg(phi.Right, k.Sub[1]))
	case formula.KindAlways:
		return p.parseTemporalEdges(phi, k, "NegAlw", false)
	case formula.KindEventually:
		return p.parseTemporalEdges(phi, k, "NegEv", false)
	default:
		return nil
	}
}

func prefixEdges(prefix string, edges []phiEdge) []phiEdge {
	out := make([]phiEdge, len(edges))
	for i, e := range edges {
		out[i] = phiEdge{prefix + e.greater, prefix + e.smaller}
	}
	return out
}

func combineEdges(prefix string, edges1, edges2 []phiEdge) []phiEdge {
	out := make([]phiEdge, 0, len(edges1)*len(edges2))
	for _, e1 := range edges1 {
		for _, e2 := range edges2 {
			out = append(out, phiEdge{prefix + e1.greater + e2.greater, prefix + e1.smaller + e2.smaller})
		}
	}
	return out
}

func (p *parser) parseTemporalEdges(phi *formula.Node, k DepthSpec, prefix string, childPos bool) []phiEdge {
	var childEdges []phiEdge
	if childPos {
		childEdges = p.parseEdgesPos(phi.Child, k.Sub[0])
	} else {
		childEdges = p.parseEdgesNeg(phi.Child, k.Sub[0])
	}

	queue := cartesianPowerEdges(childEdges, k.Split)

	result := make([]phiEdge, 0, len(queue))
	for _, row := range queue {
		var g, s strings.Builder
		g.WriteString(prefix + "_")
		s.WriteString(prefix + "_")
		for _, e := range row {
			g.WriteString(e.greater)
			s.WriteString(e.smaller)
		}
		result = append(result, phiEdge{g.String(), s.String()})
	}
	return result
}

func cartesianPowerEdges(items []phiEdge, power int) [][]phiEdge {
	queue := make([][]phiEdge, len(items))
	for i, it := range items {
		queue[i] = []phiEdge{it}
	}
	for len(queue[0]) < power {
		next := make([][]phiEdge, 0, len(queue)*len(items))
		for _, row := range queue {
			for _, it := range items {
				grown := make([]phiEdge, len(row)+1)
				copy(grown, row)
				grown[len(row)] = it
				next = append(next, grown)
			}
		}
		queue = next
	}
	return queue
}
