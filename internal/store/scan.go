package store

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phylo-app/phylo/internal/models"
)

// memberColumns lists the columns selected for member queries.
const memberColumns = `id::text, tree_id::text, name, gender, created_at`

// relationshipColumns lists the columns selected for relationship queries.
const relationshipColumns = `id::text, tree_id::text, kind, member_a::text, member_b::text, created_at`

// scanMember scans a single row into a models.Member.
func scanMember(scan func(dest ...any) error) (*models.Member, error) {
	var m models.Member

	if err := scan(&m.ID, &m.TreeID, &m.Name, &m.Gender, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

// scanRelationship scans a single row into a models.Relationship.
func scanRelationship(scan func(dest ...any) error) (*models.Relationship, error) {
	var r models.Relationship

	if err := scan(&r.ID, &r.TreeID, &r.Kind, &r.MemberA, &r.MemberB, &r.CreatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

// collectMembers scans all rows into a member slice.
func collectMembers(rows pgx.Rows) ([]models.Member, error) {
	members := make([]models.Member, 0, 64)

	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}

		members = append(members, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}

// collectRelationships scans all rows into a relationship slice.
func collectRelationships(rows pgx.Rows) ([]models.Relationship, error) {
	rels := make([]models.Relationship, 0, 64)

	for rows.Next() {
		r, err := scanRelationship(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship row: %w", err)
		}

		rels = append(rels, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship rows: %w", err)
	}

	return rels, nil
}
