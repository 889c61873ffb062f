// Package importer loads clan rows from a CSV export into the clans table.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
)

// Stats summarizes one CSV pass.
type Stats struct {
	Read    int
	Skipped int
	// Defaulted counts rows whose created_at could not be parsed and was
	// replaced by the import time.
	Defaulted int
}

// timestamp layouts accepted for created_at, tried in order. Values without
// a zone are taken as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ReadCSV parses a header-led CSV with name, region and optional created_at
// columns. Rows missing name or region are skipped.
func ReadCSV(r io.Reader, now func() time.Time) ([]domain.NewClan, Stats, error) {
	var stats Stats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, fmt.Errorf("csv is empty")
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"name", "region"} {
		if _, ok := col[required]; !ok {
			return nil, stats, fmt.Errorf("csv header is missing %q column", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []domain.NewClan
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.Read+2, err)
		}
		stats.Read++

		in, err := domain.NormalizeNewClan(field(rec, "name"), field(rec, "region"))
		if err != nil {
			stats.Skipped++
			continue
		}

		if raw := strings.TrimSpace(field(rec, "created_at")); raw != "" {
			ts, ok := parseTimestamp(raw)
			if !ok {
				ts = now().UTC()
				stats.Defaulted++
			}
			in.CreatedAt = &ts
		}
		out = append(out, in)
	}
	return out, stats, nil
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Inserter is implemented by repository.ClanRepository.
type Inserter interface {
	Insert(ctx context.Context, in domain.NewClan) (*domain.Clan, error)
}

// Run inserts rows one by one and stops at the first failure, returning how
// many rows were written before it.
func Run(ctx context.Context, store Inserter, rows []domain.NewClan) (int, error) {
	inserted := 0
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}
		if _, err := store.Insert(ctx, row); err != nil {
			return inserted, fmt.Errorf("insert row %d (%s/%s): %w", i+1, row.Name, row.Region, err)
		}
		inserted++
	}
	return inserted, nil
}
