package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinSearchLen is the shortest trimmed query accepted by search, counted in
// characters rather than bytes.
const MinSearchLen = 3

// Clan is a named, region-tagged record. ID is generated by the store and
// surfaced to clients as text.
type Clan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClan carries the already-normalized fields of a row to insert.
// CreatedAt is nil unless the caller wants to keep an existing timestamp.
type NewClan struct {
	Name      string
	Region    string
	CreatedAt *time.Time
}

// NormalizeName trims surrounding whitespace; case is preserved.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeRegion trims surrounding whitespace and uppercases the code.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

// NormalizeNewClan returns the normalized insert for name and region, or a
// validation error naming the first empty field.
func NormalizeNewClan(name, region string) (NewClan, error) {
	n := NewClan{
		Name:   NormalizeName(name),
		Region: NormalizeRegion(region),
	}
	if n.Name == "" {
		return NewClan{}, Validation("name is required")
	}
	if n.Region == "" {
		return NewClan{}, Validation("region is required")
	}
	return n, nil
}

// NormalizeSearchQuery trims q and rejects it when shorter than MinSearchLen.
func NormalizeSearchQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinSearchLen {
		return "", Validation("name must be at least 3 chars")
	}
	return q, nil
}
