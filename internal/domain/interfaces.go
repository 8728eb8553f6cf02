// Package domain defines the canonical service interfaces shared across the
// HTTP API, the CLI and the client. Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/phylo-app/phylo/internal/models"
)

// TreeReader loads consistent tree snapshots.
type TreeReader interface {
	Snapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error)
	ListRelationships(ctx context.Context, treeID string) ([]models.Relationship, error)
}

// RelationService answers kinship questions about one tree.
type RelationService interface {
	Between(ctx context.Context, q models.RelationQuery) (*models.RelationResult, error)
	RelationsFrom(ctx context.Context, treeID, memberID string) (*models.RelationList, error)
	ListRelationships(ctx context.Context, treeID string) (*models.RelationshipList, error)
	ExportSnapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error)
}
