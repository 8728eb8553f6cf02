package client

import (
	"context"
	"net/url"
)

// RelationService handles kinship queries.
type RelationService struct {
	c *Client
}

// Between describes what member `to` is to member `from`.
func (s *RelationService) Between(ctx context.Context, treeID, from, to string) (*RelationResult, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	var resp RelationResult
	if err := s.c.get(ctx, treePath(treeID)+"/relations/between", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// From describes every other member of the tree relative to memberID.
func (s *RelationService) From(ctx context.Context, treeID, memberID string) (*RelationList, error) {
	var resp RelationList
	if err := s.c.get(ctx, treePath(treeID)+"/relations/from/"+url.PathEscape(memberID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns the raw spouse and parent-child edges of a tree.
func (s *RelationService) List(ctx context.Context, treeID string) (*RelationshipList, error) {
	var resp RelationshipList
	if err := s.c.get(ctx, treePath(treeID)+"/relationships", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TreeService handles whole-tree operations.
type TreeService struct {
	c *Client
}

// Export downloads the tree as a snapshot.
func (s *TreeService) Export(ctx context.Context, treeID string) (*TreeSnapshot, error) {
	var resp TreeSnapshot
	if err := s.c.get(ctx, treePath(treeID)+"/snapshot", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportYAML downloads the tree snapshot as the YAML document accepted by
// offline queries.
func (s *TreeService) ExportYAML(ctx context.Context, treeID string) ([]byte, error) {
	params := url.Values{}
	params.Set("format", "yaml")
	return s.c.raw(ctx, treePath(treeID)+"/snapshot", params)
}
