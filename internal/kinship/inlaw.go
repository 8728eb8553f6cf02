package kinship

// inLaw resolves relationships reached through exactly one marriage. It runs
// only when the blood classifier found nothing.
func (r *resolver) inLaw(from, to string) (Relation, []string, bool) {
	g := r.g

	// Married to one of from's parents.
	for _, p := range g.parents[from] {
		if g.isSpouse(p, to) && !g.isParent(to, from) {
			return Step(Parent()), []string{from, p, to}, true
		}
	}

	// from is married to one of to's parents.
	for _, p := range g.parents[to] {
		if g.isSpouse(from, p) && !g.isParent(from, to) {
			return Step(Child()), []string{from, p, to}, true
		}
	}

	// Blood relatives of from's spouses.
	for _, s := range g.spouses[from] {
		rel, path, ok := r.blood(s, to)
		if !ok {
			continue
		}

		if mapped, ok := throughSpouse(rel); ok {
			return mapped, join([]string{from, s}, path), true
		}
	}

	for _, c := range g.children[from] {
		if g.isSpouse(c, to) {
			return InLaw(Child()), []string{from, c, to}, true
		}
	}

	// Spouses of from's blood relatives. Cousins are left to the cultural
	// adjuster, which names them "cousin-in-law".
	for _, s := range g.spouses[to] {
		if s == from {
			continue
		}

		rel, path, ok := r.blood(from, s)
		if !ok {
			continue
		}

		if mapped, ok := spouseOfRelative(rel); ok {
			return mapped, append(path, to), true
		}
	}

	return Relation{}, nil, false
}

// throughSpouse maps what `to` is to from's spouse onto what `to` is to from.
func throughSpouse(rel Relation) (Relation, bool) {
	switch rel.Kind {
	case KindParent:
		return InLaw(Parent()), true
	case KindSibling:
		return InLaw(Sibling()), true
	case KindAncestor, KindDescendant, KindAuntUncle, KindNieceNephew, KindCousin:
		return InLaw(rel), true
	default:
		return Relation{}, false
	}
}

// spouseOfRelative maps what from's relative is to from onto that relative's
// spouse.
func spouseOfRelative(rel Relation) (Relation, bool) {
	switch rel.Kind {
	case KindParent:
		return Step(Parent()), true
	case KindChild:
		return InLaw(Child()), true
	case KindSibling:
		return InLaw(Sibling()), true
	case KindAncestor, KindDescendant, KindAuntUncle, KindNieceNephew:
		return InLaw(rel), true
	default:
		return Relation{}, false
	}
}
