package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Describe renders the target of a connection string without credentials,
// e.g. "clans@db.internal:5432/clans", for startup logs.
func Describe(dsn string) string {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return "<invalid dsn>"
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
