package models

// RelationQuery identifies the two ends of a relationship question.
type RelationQuery struct {
	TreeID string `json:"tree_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Validate checks that all ids are present and well formed.
func (q *RelationQuery) Validate() error {
	if q.From == "" {
		return ErrMissingFrom
	}

	if q.To == "" {
		return ErrMissingTo
	}

	if err := ValidateID("tree_id", q.TreeID); err != nil {
		return err
	}

	if err := ValidateID("from", q.From); err != nil {
		return err
	}

	return ValidateID("to", q.To)
}

// RelationResult describes what the `to` member is to the `from` member.
type RelationResult struct {
	FromMemberID   string `json:"from_member_id"`
	FromMemberName string `json:"from_member_name"`
	ToMemberID     string `json:"to_member_id"`
	ToMemberName   string `json:"to_member_name"`
	// Relationship is rendered for the `to` member's gender.
	Relationship        string   `json:"relationship"`
	GenericRelationship string   `json:"generic_relationship"`
	Kind                string   `json:"kind"`
	Cultural            string   `json:"cultural,omitempty"`
	// HalfSibling marks siblings known to share only one parent.
	HalfSibling bool     `json:"half_sibling,omitempty"`
	Path        []string `json:"path"`
	PathNames   []string `json:"path_names"`
}

// RelationList is every member's relationship to one member of a tree.
type RelationList struct {
	TreeID    string           `json:"tree_id"`
	MemberID  string           `json:"member_id"`
	Relations []RelationResult `json:"relations"`
}

// RelationshipList is the raw edge listing of a tree.
type RelationshipList struct {
	TreeID        string         `json:"tree_id"`
	Relationships []Relationship `json:"relationships"`
}
