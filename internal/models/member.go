// Package models defines data types for family trees and relationship queries.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phylo-app/phylo/internal/kinship"
)

// Member is a person in a family tree.
type Member struct {
	ID        string    `json:"id" yaml:"id"`
	TreeID    string    `json:"tree_id" yaml:"-"`
	Name      string    `json:"name" yaml:"name"`
	Gender    string    `json:"gender,omitempty" yaml:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// DisplayName returns the member's name, falling back to its id.
func (m *Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}

	return m.ID
}

// KinshipMember converts m to the engine's representation.
func (m *Member) KinshipMember() kinship.Member {
	return kinship.Member{ID: m.ID, Name: m.DisplayName(), Gender: m.Gender}
}

// ValidateID checks that id is a well-formed UUID.
func ValidateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", field, ErrMissingID)
	}

	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s: %w", field, ErrInvalidID)
	}

	return nil
}
