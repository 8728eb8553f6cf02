package models

import (
	"time"

	"github.com/phylo-app/phylo/internal/kinship"
)

// Relationship kinds as stored in the relationships table.
const (
	KindSpouse      = string(kinship.EdgeSpouse)
	KindParentChild = string(kinship.EdgeParentChild)
)

// Relationship is a stored edge between two members of the same tree. For
// parent-child relationships MemberA is the parent.
type Relationship struct {
	ID        string    `json:"id" yaml:"-"`
	TreeID    string    `json:"tree_id" yaml:"-"`
	Kind      string    `json:"kind" yaml:"kind"`
	MemberA   string    `json:"member_a" yaml:"a"`
	MemberB   string    `json:"member_b" yaml:"b"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// Validate checks the relationship's kind and endpoints.
func (r *Relationship) Validate() error {
	if r.Kind != KindSpouse && r.Kind != KindParentChild {
		return ErrInvalidKind
	}

	if err := ValidateID("member_a", r.MemberA); err != nil {
		return err
	}

	if err := ValidateID("member_b", r.MemberB); err != nil {
		return err
	}

	if r.MemberA == r.MemberB {
		return ErrSelfRelationship
	}

	return nil
}

// KinshipEdge converts r to the engine's representation.
func (r *Relationship) KinshipEdge() kinship.Edge {
	return kinship.Edge{Kind: kinship.EdgeKind(r.Kind), A: r.MemberA, B: r.MemberB}
}
