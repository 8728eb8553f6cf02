package service

import (
	"errors"
	"fmt"

	"github.com/phylo-app/phylo/internal/kinship"
	"github.com/phylo-app/phylo/internal/models"
)

// RelateInSnapshot answers one query against an already loaded snapshot. It
// is the offline counterpart of RelationshipService.Between.
func RelateInSnapshot(snap *models.TreeSnapshot, from, to string) (*models.RelationResult, error) {
	return relate(snap.Graph(), snap.MemberIndex(), from, to)
}

// RelationsInSnapshot describes every other member of snap relative to from,
// in member-id order.
func RelationsInSnapshot(snap *models.TreeSnapshot, from string) (*models.RelationList, error) {
	g := snap.Graph()
	if !g.Has(from) {
		return nil, fmt.Errorf("%w: %s", models.ErrMemberNotFound, from)
	}

	index := snap.MemberIndex()
	list := &models.RelationList{TreeID: snap.TreeID, MemberID: from}

	for _, to := range g.IDs() {
		if to == from {
			continue
		}

		res, err := relate(g, index, from, to)
		if err != nil {
			return nil, err
		}

		list.Relations = append(list.Relations, *res)
	}

	return list, nil
}

// relate runs the engine and renders the answer: the label is gendered for
// the `to` member and path ids are resolved to display names.
func relate(g *kinship.Graph, index map[string]*models.Member, from, to string) (*models.RelationResult, error) {
	res, err := kinship.Compute(g, from, to)
	if err != nil {
		if errors.Is(err, kinship.ErrUnknownMember) {
			return nil, fmt.Errorf("%w: %w", models.ErrMemberNotFound, err)
		}

		return nil, err
	}

	fromMember, toMember := index[from], index[to]

	out := &models.RelationResult{
		FromMemberID:        from,
		FromMemberName:      fromMember.DisplayName(),
		ToMemberID:          to,
		ToMemberName:        toMember.DisplayName(),
		Relationship:        res.Relation.Gendered(toMember.Gender),
		GenericRelationship: res.Label(),
		Kind:                res.Relation.Kind.String(),
		HalfSibling:         res.HalfSibling,
		Path:                res.Path,
		PathNames:           make([]string, len(res.Path)),
	}

	if res.Cultural != nil {
		out.Cultural = res.Cultural.Gendered(toMember.Gender)
	}

	for i, id := range res.Path {
		if m, ok := index[id]; ok {
			out.PathNames[i] = m.DisplayName()
		} else {
			out.PathNames[i] = id
		}
	}

	return out, nil
}

// ValidateSnapshot reports consistency problems in a snapshot without
// rejecting it; the engine tolerates every problem listed here. An empty
// slice means the snapshot is clean.
func ValidateSnapshot(snap *models.TreeSnapshot) []string {
	var problems []string

	if snap.Version > models.SnapshotVersion {
		problems = append(problems, fmt.Sprintf(
			"snapshot version %d is newer than supported version %d", snap.Version, models.SnapshotVersion,
		))
	}

	seen := make(map[string]bool, len(snap.Members))

	for i := range snap.Members {
		m := &snap.Members[i]
		if m.ID == "" {
			problems = append(problems, fmt.Sprintf("member %d has no id", i))
			continue
		}

		if seen[m.ID] {
			problems = append(problems, fmt.Sprintf("member %s appears more than once", m.ID))
		}

		seen[m.ID] = true
	}

	for i := range snap.Relationships {
		r := &snap.Relationships[i]

		switch {
		case r.Kind != models.KindSpouse && r.Kind != models.KindParentChild:
			problems = append(problems, fmt.Sprintf("relationship %d has unknown kind %q", i, r.Kind))
		case r.MemberA == r.MemberB:
			problems = append(problems, fmt.Sprintf("relationship %d links %s to itself", i, r.MemberA))
		case !seen[r.MemberA] || !seen[r.MemberB]:
			problems = append(problems, fmt.Sprintf("relationship %d references a missing member (%s, %s)", i, r.MemberA, r.MemberB))
		}
	}

	return problems
}
