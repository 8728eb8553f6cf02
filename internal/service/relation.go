// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/phylo-app/phylo/internal/db"
	"github.com/phylo-app/phylo/internal/domain"
	"github.com/phylo-app/phylo/internal/kinship"
	"github.com/phylo-app/phylo/internal/metrics"
	"github.com/phylo-app/phylo/internal/models"
)

// DefaultFanout bounds concurrent engine queries in RelationsFrom.
const DefaultFanout = 8

// TreeStore is the data-access interface RelationshipService depends on.
type TreeStore = domain.TreeReader

// Compile-time check: *RelationshipService must satisfy domain.RelationService.
var _ domain.RelationService = (*RelationshipService)(nil)

// RelationshipService loads tree snapshots and runs the kinship engine over them.
type RelationshipService struct {
	store   TreeStore
	log     *logrus.Logger
	fanout  int
	version string

	// loads collapses concurrent snapshot reads of the same tree.
	loads singleflight.Group
}

// NewRelationshipService creates a RelationshipService. A non-positive fanout
// uses DefaultFanout.
func NewRelationshipService(store TreeStore, log *logrus.Logger, fanout int, version string) *RelationshipService {
	if fanout <= 0 {
		fanout = DefaultFanout
	}

	return &RelationshipService{store: store, log: log, fanout: fanout, version: version}
}

// Between describes what q.To is to q.From.
func (s *RelationshipService) Between(ctx context.Context, q models.RelationQuery) (*models.RelationResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tree_id": q.TreeID,
		"from":    q.From,
		"to":      q.To,
	}).Debug("relation.between")

	snap, err := s.snapshot(ctx, q.TreeID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := s.graph(snap)

	res, err := relate(g, snap.MemberIndex(), q.From, q.To)
	if err != nil {
		return nil, err
	}

	metrics.RelationComputeDuration.WithLabelValues("between").Observe(time.Since(start).Seconds())
	metrics.RelationKindsTotal.WithLabelValues(res.Kind).Inc()

	return res, nil
}

// RelationsFrom describes every other member of the tree relative to memberID.
// Engine queries run concurrently over one shared, read-only graph.
func (s *RelationshipService) RelationsFrom(ctx context.Context, treeID, memberID string) (*models.RelationList, error) {
	if err := models.ValidateID("tree_id", treeID); err != nil {
		return nil, err
	}

	if err := models.ValidateID("member_id", memberID); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tree_id":   treeID,
		"member_id": memberID,
	}).Debug("relation.from")

	snap, err := s.snapshot(ctx, treeID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := s.graph(snap)
	index := snap.MemberIndex()

	if !g.Has(memberID) {
		return nil, fmt.Errorf("%w: %s", models.ErrMemberNotFound, memberID)
	}

	targets := make([]string, 0, g.Len())
	for _, id := range g.IDs() {
		if id != memberID {
			targets = append(targets, id)
		}
	}

	results := make([]models.RelationResult, len(targets))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.fanout)

	for i, to := range targets {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := relate(g, index, memberID, to)
			if err != nil {
				return err
			}

			results[i] = *res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("computing relations from %s: %w", memberID, err)
	}

	metrics.RelationComputeDuration.WithLabelValues("from").Observe(time.Since(start).Seconds())

	for i := range results {
		metrics.RelationKindsTotal.WithLabelValues(results[i].Kind).Inc()
	}

	return &models.RelationList{TreeID: treeID, MemberID: memberID, Relations: results}, nil
}

// ListRelationships returns the raw edges of a tree.
func (s *RelationshipService) ListRelationships(ctx context.Context, treeID string) (*models.RelationshipList, error) {
	if err := models.ValidateID("tree_id", treeID); err != nil {
		return nil, err
	}

	s.log.WithField("tree_id", treeID).Debug("relation.list")

	rels, err := s.store.ListRelationships(ctx, treeID)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}

	return &models.RelationshipList{TreeID: treeID, Relationships: rels}, nil
}

// ExportSnapshot returns the tree in the portable snapshot format used by
// offline queries.
func (s *RelationshipService) ExportSnapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error) {
	if err := models.ValidateID("tree_id", treeID); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, treeID)
	if err != nil {
		return nil, err
	}

	// Loaded snapshots may be shared with concurrent callers.
	out := *snap
	now := time.Now().UTC()
	out.ExportedAt = &now
	out.SchemaVersion = db.SchemaVersion()
	out.PhyloVersion = s.version

	s.log.WithFields(logrus.Fields{
		"tree_id":       treeID,
		"members":       len(snap.Members),
		"relationships": len(snap.Relationships),
	}).Info("relation.export")

	return &out, nil
}

func (s *RelationshipService) snapshot(ctx context.Context, treeID string) (*models.TreeSnapshot, error) {
	// The shared load must outlive any single caller; the store applies its
	// own query timeout.
	loadCtx := context.WithoutCancel(ctx)

	ch := s.loads.DoChan(treeID, func() (any, error) {
		return s.store.Snapshot(loadCtx, treeID)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("loading tree %s: %w", treeID, ctx.Err())
	case res = <-ch:
	}

	if res.Err != nil {
		return nil, fmt.Errorf("loading tree %s: %w", treeID, res.Err)
	}

	snap, ok := res.Val.(*models.TreeSnapshot)
	if !ok {
		return nil, fmt.Errorf("service: unexpected snapshot result type %T", res.Val)
	}

	metrics.SnapshotMembers.Observe(float64(len(snap.Members)))

	return snap, nil
}

func (s *RelationshipService) graph(snap *models.TreeSnapshot) *kinship.Graph {
	g := snap.Graph()

	if n := g.Skipped(); n > 0 {
		metrics.SkippedEdgesTotal.Add(float64(n))
		s.log.WithFields(logrus.Fields{
			"tree_id": snap.TreeID,
			"skipped": n,
		}).Warn("ignored malformed relationships")
	}

	return g
}
