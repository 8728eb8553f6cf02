// Package store provides read access to family trees in PostgreSQL.
//
// Every relationship query works on one snapshot: members and relationships
// are read inside a single read-only, repeatable-read transaction so that the
// engine never sees a half-applied write.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/dbpool"
)

const defaultQueryTimeout = 15 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// beginSnapshotTx starts a read-only transaction whose reads all observe the
// same database snapshot.
func (b *Base) beginSnapshotTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := b.Pool.BeginTx(ctx, pgx.TxOptions{
		AccessMode: pgx.ReadOnly,
		IsoLevel:   pgx.RepeatableRead,
	})
	if err != nil {
		return nil, fmt.Errorf("beginning snapshot transaction: %w", err)
	}

	return tx, nil
}
