package kinship

import "slices"

// resolver answers one query against a Graph. It memoizes ancestor maps for
// the lifetime of the query only; nothing outlives Compute.
type resolver struct {
	g         *Graph
	ancestors map[string]Distances
}

func newResolver(g *Graph) *resolver {
	return &resolver{g: g, ancestors: make(map[string]Distances)}
}

func (r *resolver) ancestorsOf(id string) Distances {
	if d, ok := r.ancestors[id]; ok {
		return d
	}

	d := r.g.Ancestors(id)
	r.ancestors[id] = d

	return d
}

// commonAncestor is the closest shared ancestor of two members.
type commonAncestor struct {
	id     string
	distA  int
	distB  int
	exists bool
}

// closestCommon picks the ancestor minimizing distA+distB. Ties go to the
// smaller distA, then to the smaller member id.
func closestCommon(a, b Distances) commonAncestor {
	var best commonAncestor

	for _, e := range a.sorted() {
		db, ok := b[e.id]
		if !ok {
			continue
		}

		if !best.exists || better(e.distance, db, e.id, best) {
			best = commonAncestor{id: e.id, distA: e.distance, distB: db, exists: true}
		}
	}

	return best
}

func better(da, db int, id string, cur commonAncestor) bool {
	sum, curSum := da+db, cur.distA+cur.distB
	if sum != curSum {
		return sum < curSum
	}

	if da != cur.distA {
		return da < cur.distA
	}

	return id < cur.id
}

// blood classifies `to` relative to `from` from spouse and parent-child
// edges alone. The second result is the display path from `from` to `to`.
func (r *resolver) blood(from, to string) (Relation, []string, bool) {
	g := r.g

	switch {
	case from == to:
		return Self(), []string{from}, true
	case g.isSpouse(from, to):
		return Spouse(), []string{from, to}, true
	case g.isParent(from, to):
		return Child(), []string{from, to}, true
	case g.isParent(to, from):
		return Parent(), []string{from, to}, true
	}

	af, at := r.ancestorsOf(from), r.ancestorsOf(to)

	if d, ok := af[to]; ok {
		return Ancestor(d), g.PathUp(from, to, d), true
	}

	if d, ok := at[from]; ok {
		return Descendant(d), g.PathDown(from, to, d), true
	}

	ca := closestCommon(af, at)
	if !ca.exists {
		return Relation{}, nil, false
	}

	return collateral(ca), r.throughAncestor(from, to, ca.id, ca.distA, ca.distB), true
}

func collateral(ca commonAncestor) Relation {
	df, dt := ca.distA, ca.distB

	switch {
	case df == 1 && dt == 1:
		return Sibling()
	case dt == 1:
		return AuntUncle(df - 2)
	case df == 1:
		return NieceNephew(dt - 2)
	default:
		return Cousin(min(df, dt)-1, abs(df-dt))
	}
}

// isHalfSibling reports whether two siblings are known to share only one
// parent: both have at least two recorded parents and the sets differ. A
// single recorded parent is treated as an incomplete record.
func isHalfSibling(g *Graph, a, b string) bool {
	pa, pb := g.parents[a], g.parents[b]
	if len(pa) < 2 || len(pb) < 2 {
		return false
	}

	return !g.sameParents(a, b)
}

// throughAncestor joins from -> ... -> via and via -> ... -> to.
func (r *resolver) throughAncestor(from, to, via string, distFrom, distTo int) []string {
	up := r.g.PathUp(from, via, distFrom)
	down := r.g.PathUp(to, via, distTo)

	if up == nil || down == nil {
		return []string{from, to}
	}

	slices.Reverse(down)

	return append(up, down[1:]...)
}

// join concatenates two display paths that share an endpoint.
func join(a, b []string) []string {
	if len(a) == 0 {
		return slices.Clone(b)
	}

	if len(b) == 0 {
		return slices.Clone(a)
	}

	out := slices.Clone(a)

	return append(out, b[1:]...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
