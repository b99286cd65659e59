package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/zhufei/sports-backend/internal/config"
)

// connectAttempts and connectRetryDelay govern the startup retry loop.
// A fixed delay (not a backoff schedule) is enough here: the only transient
// failure we care about is the database container coming up after us.
const (
	connectAttempts   = 5
	connectRetryDelay = 5 * time.Second
)

// NewPostgresPool creates and validates a PostgreSQL connection pool.
// Connection failures at startup are retried on a fixed delay before
// giving up; once the pool is open it is shared for the process lifetime.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxDBConns

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("create pool: %w", err)
		}

		if err := pool.Ping(ctx); err == nil {
			log.Info().
				Int32("max_conns", cfg.MaxDBConns).
				Int("attempt", attempt).
				Msg("PostgreSQL connected")
			return pool, nil
		} else {
			lastErr = err
			pool.Close()
		}

		if attempt < connectAttempts {
			log.Warn().
				Err(lastErr).
				Int("attempt", attempt).
				Dur("retry_in", connectRetryDelay).
				Msg("PostgreSQL not reachable, retrying")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(connectRetryDelay):
			}
		}
	}

	return nil, fmt.Errorf("ping database after %d attempts: %w", connectAttempts, lastErr)
}
