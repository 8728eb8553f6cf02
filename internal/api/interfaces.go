package api

import (
	"context"

	"github.com/phylo-app/phylo/internal/domain"
)

// RelationRepository defines the kinship operations used by RelationHandler.
type RelationRepository = domain.RelationService

// DatabaseChecker reports connectivity and pool usage for the health endpoints.
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() (total, idle, acquired int32)
}

// SchemaChecker verifies that migrations have been applied.
type SchemaChecker interface {
	CheckSchema(ctx context.Context) error
}
