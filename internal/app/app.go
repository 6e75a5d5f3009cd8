package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/kaudaouda/Anac-backend/internal/config"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// App holds the shared process-level resources.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
}

// NewApp connects to Postgres with retry; cold starts often race the
// database container.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	var pool *pgxpool.Pool
	backoff := time.Second
	for attempt := 1; attempt <= 5; attempt++ {
		pool, err = pgxpool.ConnectConfig(ctx, poolCfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				utils.Logger.Info("connected to database")
				return &App{Config: cfg, DB: pool}, nil
			} else {
				err = pingErr
				pool.Close()
			}
		}

		utils.Logger.WithError(err).Warnf("database connection attempt %d/5 failed", attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("connecting to database: %w", err)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
