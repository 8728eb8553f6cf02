package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/models"
)

// TreeStore reads tree snapshots and relationship listings.
type TreeStore struct {
	Base
}

// NewTreeStore creates a TreeStore with the given shared base.
func NewTreeStore(base Base) *TreeStore {
	return &TreeStore{Base: base}
}

// Snapshot reads every member and relationship of a tree in one consistent
// transaction. Rows are ordered by id so the snapshot is deterministic.
func (s *TreeStore) Snapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginSnapshotTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tree snapshot: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	name, err := treeName(ctx, tx, treeID)
	if err != nil {
		return nil, err
	}

	memberRows, err := tx.Query(ctx, `SELECT `+memberColumns+` FROM members WHERE tree_id = $1 ORDER BY id`, treeID)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}

	members, err := collectMembers(memberRows)
	memberRows.Close()

	if err != nil {
		return nil, err
	}

	rels, err := queryRelationships(ctx, tx, treeID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing tree snapshot: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"tree_id":       treeID,
		"members":       len(members),
		"relationships": len(rels),
	}).Debug("store.snapshot")

	return &models.TreeSnapshot{
		Version:       models.SnapshotVersion,
		TreeID:        treeID,
		TreeName:      name,
		Members:       members,
		Relationships: rels,
	}, nil
}

// ListRelationships returns the raw spouse and parent-child edges of a tree.
func (s *TreeStore) ListRelationships(ctx context.Context, treeID string) ([]models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginSnapshotTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if _, err := treeName(ctx, tx, treeID); err != nil {
		return nil, err
	}

	rels, err := queryRelationships(ctx, tx, treeID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing list relationships: %w", err)
	}

	return rels, nil
}

// CheckSchema verifies that the tree tables exist and are readable.
func (s *TreeStore) CheckSchema(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	if err := s.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM trees").Scan(&count); err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	return nil
}

func treeName(ctx context.Context, tx pgx.Tx, treeID string) (string, error) {
	var name string

	err := tx.QueryRow(ctx, `SELECT name FROM trees WHERE id = $1`, treeID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrTreeNotFound
		}

		return "", fmt.Errorf("looking up tree: %w", err)
	}

	return name, nil
}

func queryRelationships(ctx context.Context, tx pgx.Tx, treeID string) ([]models.Relationship, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+relationshipColumns+` FROM relationships WHERE tree_id = $1 ORDER BY kind, member_a, member_b`,
		treeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	return collectRelationships(rows)
}
