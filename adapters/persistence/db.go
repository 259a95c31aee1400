package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/config"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// orderClause resolves a caller-provided sort column against the
// repo's whitelist, falling back to created_at, and normalizes the
// direction. Sort input never reaches SQL unchecked.
func orderClause(allowed map[string]bool, sortBy, order string) string {
	if !allowed[sortBy] {
		sortBy = "created_at"
	}
	if order != "asc" {
		order = "desc"
	}
	return sortBy + " " + order
}
