package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
	"github.com/GoSim-25-26J-441/clan-api/internal/storage/postgres"
)

// ClanRepository runs each clan operation as one parameterized statement on
// its own session from the provider.
type ClanRepository struct {
	conns postgres.Provider
}

// NewClanRepository creates a new clan repository
func NewClanRepository(conns postgres.Provider) *ClanRepository {
	return &ClanRepository{conns: conns}
}

const clanColumns = `id::text AS id, name, region, created_at`

// Create inserts an already-normalized clan and returns the stored row.
func (r *ClanRepository) Create(ctx context.Context, name, region string) (*domain.Clan, error) {
	return r.Insert(ctx, domain.NewClan{Name: name, Region: region})
}

// Insert writes one row. A nil CreatedAt lets the table default apply.
func (r *ClanRepository) Insert(ctx context.Context, in domain.NewClan) (*domain.Clan, error) {
	const op = "insert"

	q := `
INSERT INTO clans (name, region)
VALUES ($1, $2)
RETURNING ` + clanColumns + `;
`
	args := []any{in.Name, in.Region}
	if in.CreatedAt != nil {
		q = `
INSERT INTO clans (name, region, created_at)
VALUES ($1, $2, $3)
RETURNING ` + clanColumns + `;
`
		args = append(args, *in.CreatedAt)
	}

	s, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, domain.Storage(op, err)
	}
	defer s.Close()

	var c domain.Clan
	if err := s.QueryRowContext(ctx, q, args...).Scan(&c.ID, &c.Name, &c.Region, &c.CreatedAt); err != nil {
		return nil, domain.Storage(op, err)
	}
	return &c, nil
}

// List returns every clan, newest first. There is no limit.
func (r *ClanRepository) List(ctx context.Context) ([]domain.Clan, error) {
	const q = `
SELECT ` + clanColumns + `
FROM clans
ORDER BY created_at DESC;
`
	return r.query(ctx, "list", q)
}

// Search returns clans whose name contains query, ignoring case, newest first.
// LIKE wildcards in query match literally.
func (r *ClanRepository) Search(ctx context.Context, query string) ([]domain.Clan, error) {
	const q = `
SELECT ` + clanColumns + `
FROM clans
WHERE name ILIKE $1
ORDER BY created_at DESC;
`
	return r.query(ctx, "search", q, "%"+EscapeLike(query)+"%")
}

// Delete removes the clan with the given id and returns that id, or
// domain.ErrNotFound when no row matched.
func (r *ClanRepository) Delete(ctx context.Context, id string) (string, error) {
	const op = "delete"
	const q = `DELETE FROM clans WHERE id = $1 RETURNING id::text AS id;`

	s, err := r.conns.Acquire(ctx)
	if err != nil {
		return "", domain.Storage(op, err)
	}
	defer s.Close()

	var deleted string
	if err := s.QueryRowContext(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFound(op)
		}
		return "", domain.Storage(op, err)
	}
	return deleted, nil
}

func (r *ClanRepository) query(ctx context.Context, op, q string, args ...any) ([]domain.Clan, error) {
	s, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, domain.Storage(op, err)
	}
	defer s.Close()

	rows, err := s.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.Storage(op, err)
	}
	defer rows.Close()

	out := make([]domain.Clan, 0, 16)
	for rows.Next() {
		var c domain.Clan
		if err := rows.Scan(&c.ID, &c.Name, &c.Region, &c.CreatedAt); err != nil {
			return nil, domain.Storage(op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(op, err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters using the default backslash
// escape so s matches as a plain substring.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
