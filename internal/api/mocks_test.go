package api_test

import (
	"context"
	"errors"

	"github.com/phylo-app/phylo/internal/models"
)

// mockRelationService implements api.RelationRepository for testing.
type mockRelationService struct {
	betweenFn func(ctx context.Context, q models.RelationQuery) (*models.RelationResult, error)
	fromFn    func(ctx context.Context, treeID, memberID string) (*models.RelationList, error)
	listFn    func(ctx context.Context, treeID string) (*models.RelationshipList, error)
	exportFn  func(ctx context.Context, treeID string) (*models.TreeSnapshot, error)
}

func (m *mockRelationService) Between(ctx context.Context, q models.RelationQuery) (*models.RelationResult, error) {
	return m.betweenFn(ctx, q)
}

func (m *mockRelationService) RelationsFrom(ctx context.Context, treeID, memberID string) (*models.RelationList, error) {
	return m.fromFn(ctx, treeID, memberID)
}

func (m *mockRelationService) ListRelationships(ctx context.Context, treeID string) (*models.RelationshipList, error) {
	return m.listFn(ctx, treeID)
}

func (m *mockRelationService) ExportSnapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error) {
	return m.exportFn(ctx, treeID)
}

// mockDatabase implements api.DatabaseChecker and api.SchemaChecker.
type mockDatabase struct {
	healthErr error
	schemaErr error
}

func (m *mockDatabase) HealthCheck(_ context.Context) error { return m.healthErr }

func (m *mockDatabase) Stats() (total, idle, acquired int32) { return 4, 3, 1 }

func (m *mockDatabase) CheckSchema(_ context.Context) error { return m.schemaErr }

var errBoom = errors.New("boom")
