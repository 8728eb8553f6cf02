package kinship

import (
	"errors"
	"fmt"
)

// ErrUnknownMember is returned when a queried id is not a member of the graph.
var ErrUnknownMember = errors.New("unknown member")

// Result is the answer to one query. Path always starts at `from` and ends at
// `to`; for unknown relationships it is just the two endpoints.
type Result struct {
	Relation Relation
	// Cultural is the conventional alternate name for removed cousins, e.g.
	// "2nd aunt/uncle" for a parent's first cousin.
	Cultural *Relation
	// HalfSibling is set on a sibling answer when the two members are known
	// to share only one parent. The label stays "sibling".
	HalfSibling bool
	Path        []string
}

// Label is the plain, gender-neutral label.
func (r Result) Label() string { return r.Relation.Label() }

// CulturalLabel returns the alternate label, or "" when there is none.
func (r Result) CulturalLabel() string {
	if r.Cultural == nil {
		return ""
	}

	return r.Cultural.Label()
}

// Compute returns what `to` is to `from`: blood relationships first, then
// relationships through one marriage, then the cultural naming, then unknown.
func Compute(g *Graph, from, to string) (Result, error) {
	for _, id := range []string{from, to} {
		if !g.Has(id) {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownMember, id)
		}
	}

	r := newResolver(g)

	if rel, path, ok := r.blood(from, to); ok {
		res := Result{Relation: rel, Path: path}

		if rel.Kind == KindSibling {
			res.HalfSibling = isHalfSibling(g, from, to)
		}

		if rel.Kind == KindCousin && rel.Removal > 0 {
			if alt, _, ok := r.cultural(from, to); ok {
				res.Cultural = &alt
			}
		}

		return res, nil
	}

	if rel, path, ok := r.inLaw(from, to); ok {
		return Result{Relation: rel, Path: path}, nil
	}

	if rel, path, ok := r.cultural(from, to); ok {
		return Result{Relation: rel, Path: path}, nil
	}

	return Result{Relation: Unknown(), Path: []string{from, to}}, nil
}

// Relate is Compute for callers holding only raw members and edges.
func Relate(members []Member, edges []Edge, from, to string) (Result, error) {
	return Compute(NewGraph(members, edges), from, to)
}
