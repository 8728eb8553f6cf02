package kinship

import "slices"

// cultural applies the conventional names for an ancestor's cousins and their
// reciprocals ("2nd aunt", "cousin-uncle", "cousin-in-law").
func (r *resolver) cultural(from, to string) (Relation, []string, bool) {
	g := r.g

	for _, a := range r.ancestorsOf(from).sorted() {
		rel, tail, ok := r.blood(a.id, to)
		if !ok {
			continue
		}

		mapped, ok := ancestorsKin(rel, a.distance)
		if !ok {
			continue
		}

		up := g.PathUp(from, a.id, a.distance)

		return mapped, join(up, tail), true
	}

	for _, a := range r.ancestorsOf(to).sorted() {
		rel, head, ok := r.blood(from, a.id)
		if !ok {
			continue
		}

		mapped, ok := kinOfAncestor(rel, a.distance)
		if !ok {
			continue
		}

		down := g.PathUp(to, a.id, a.distance)
		slices.Reverse(down)

		return mapped, join(head, down), true
	}

	for _, s := range g.spouses[to] {
		rel, path, ok := r.blood(from, s)
		if ok && rel.Kind == KindCousin {
			return InLaw(Cousin(0, 0)), append(path, to), true
		}
	}

	return Relation{}, nil, false
}

// ancestorsKin names `to` given what it is to one of from's ancestors at
// distance d.
func ancestorsKin(rel Relation, d int) (Relation, bool) {
	switch rel.Kind {
	case KindSibling:
		return AuntUncle(d - 1), true
	case KindCousin:
		// With d >= 2 this is unreachable from Compute: the parent's removed
		// cousin is matched first at d == 1, as the cousin-aunt naming.
		if rel.Removal == 0 {
			return CulturalAuntUncle(rel.Level+1, d-1), true
		}

		if d == 1 {
			return CousinAuntUncle(), true
		}
	}

	return Relation{}, false
}

// kinOfAncestor is the reciprocal of ancestorsKin: rel is what one of to's
// ancestors at distance d is to from.
func kinOfAncestor(rel Relation, d int) (Relation, bool) {
	switch rel.Kind {
	case KindSibling:
		return NieceNephew(d - 1), true
	case KindCousin:
		if rel.Removal == 0 {
			return CulturalNieceNephew(rel.Level+1, d-1), true
		}

		if d == 1 {
			return CousinNieceNephew(), true
		}
	}

	return Relation{}, false
}
