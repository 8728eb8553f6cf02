package service

import (
	"context"
	"sync"

	"github.com/phylo-app/phylo/internal/models"
)

// mockTreeStore records calls and returns configured responses.
type mockTreeStore struct {
	mu    sync.Mutex
	calls []string

	snapshot          func(ctx context.Context, treeID string) (*models.TreeSnapshot, error)
	listRelationships func(ctx context.Context, treeID string) ([]models.Relationship, error)
}

func (m *mockTreeStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockTreeStore) Snapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error) {
	m.record("Snapshot")
	return m.snapshot(ctx, treeID)
}

func (m *mockTreeStore) ListRelationships(ctx context.Context, treeID string) ([]models.Relationship, error) {
	m.record("ListRelationships")
	return m.listRelationships(ctx, treeID)
}
