// Package dbopen picks a repository implementation from a connection URL.
package dbopen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/db/postgres"
	"github.com/jusunglee/hinditype/internal/db/sqlite"
	"github.com/jusunglee/hinditype/internal/metrics"
)

// Driver reports which backend a URL selects: "postgres" for postgres:// and
// postgresql:// URLs, "sqlite" for everything else.
func Driver(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

// Open connects to the database named by url.
func Open(ctx context.Context, url string) (db.Repository, error) {
	switch Driver(url) {
	case "postgres":
		repo, err := postgres.New(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		return repo, nil
	default:
		repo, err := sqlite.New(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite database: %w", err)
		}
		return repo, nil
	}
}

type poolStatser interface {
	PoolStats() *pgxpool.Stat
}

// ExportPoolStats copies pool counters into the Prometheus gauges every
// interval until ctx is done. Repositories without a pool return at once.
func ExportPoolStats(ctx context.Context, repo db.Repository, interval time.Duration, log *slog.Logger) {
	p, ok := repo.(poolStatser)
	if !ok {
		log.DebugContext(ctx, "repository has no connection pool, skipping pool metrics")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := p.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}
