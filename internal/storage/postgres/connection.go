package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/clan-api/config"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/lib/pq"
)

var sqlOpen = sql.Open

// Session is the part of *sql.DB and *sql.Conn the repositories use. The
// caller must Close it when the operation is done.
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
}

// Provider hands out one Session per storage operation.
type Provider interface {
	Acquire(ctx context.Context) (Session, error)
	Ping(ctx context.Context) error
	Close() error
}

// PerOperation opens a brand new single-connection handle for every Acquire
// and tears it down on Session.Close. Nothing is shared between operations.
type PerOperation struct {
	driver string
	dsn    string
}

func NewPerOperation(driver, dsn string) *PerOperation {
	return &PerOperation{driver: driver, dsn: dsn}
}

func (p *PerOperation) Acquire(ctx context.Context) (Session, error) {
	db, err := sqlOpen(p.driver, p.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func (p *PerOperation) Ping(ctx context.Context) error {
	s, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	return s.Close()
}

func (p *PerOperation) Close() error { return nil }

// Pooled shares one *sql.DB and lends a dedicated *sql.Conn per operation.
type Pooled struct {
	db *sql.DB
}

// NewPooled wraps an already opened handle. Ownership passes to the Pooled.
func NewPooled(db *sql.DB) *Pooled {
	return &Pooled{db: db}
}

func (p *Pooled) Acquire(ctx context.Context) (Session, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

func (p *Pooled) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (p *Pooled) Close() error { return p.db.Close() }

// NewProvider builds the provider selected by cfg. It does not touch the
// network; callers ping it once at startup.
func NewProvider(cfg *config.DatabaseConfig) (Provider, error) {
	switch cfg.ConnMode {
	case config.ConnModePerOperation, "":
		return NewPerOperation(cfg.Driver, cfg.URL), nil
	case config.ConnModePooled:
		db, err := sqlOpen(cfg.Driver, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return NewPooled(db), nil
	default:
		return nil, fmt.Errorf("unknown connection mode %q", cfg.ConnMode)
	}
}

// SQLState extracts the five-character SQLSTATE from a lib/pq or pgx error,
// or "" when err did not come from the server.
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
