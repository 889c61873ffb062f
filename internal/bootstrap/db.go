package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/clan-api/config"
	"github.com/GoSim-25-26J-441/clan-api/internal/storage/postgres"
)

// OpenDB builds the configured connection provider and pings it once so a
// bad DATABASE_URL stops the process at startup rather than on first request.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (postgres.Provider, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	provider, err := postgres.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := provider.Ping(pctx); err != nil {
		_ = provider.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return provider, nil
}
