package importer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

func TestReadCSV(t *testing.T) {
	const data = "name,region,created_at\n" +
		"Dragons,eu,2024-01-02T03:04:05Z\n" +
		" Wolves , na ,\n" +
		",eu,2024-01-01T00:00:00Z\n" +
		"Ghosts,,\n" +
		"Owls,asia,2024-02-03 04:05:06\n" +
		"Foxes,sa,yesterday\n" +
		"Bears,oc,2024-02-03T04:05:06.123+02:00\n"

	rows, stats, err := ReadCSV(strings.NewReader(data), nowFn)
	require.NoError(t, err)

	assert.Equal(t, Stats{Read: 7, Skipped: 2, Defaulted: 1}, stats)
	require.Len(t, rows, 5)

	assert.Equal(t, "Dragons", rows[0].Name)
	assert.Equal(t, "EU", rows[0].Region)
	require.NotNil(t, rows[0].CreatedAt)
	assert.True(t, rows[0].CreatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	assert.Equal(t, "Wolves", rows[1].Name)
	assert.Equal(t, "NA", rows[1].Region)
	assert.Nil(t, rows[1].CreatedAt)

	require.NotNil(t, rows[2].CreatedAt)
	assert.True(t, rows[2].CreatedAt.Equal(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)))

	require.NotNil(t, rows[3].CreatedAt)
	assert.True(t, rows[3].CreatedAt.Equal(fixedNow))

	require.NotNil(t, rows[4].CreatedAt)
	assert.True(t, rows[4].CreatedAt.Equal(time.Date(2024, 2, 3, 2, 5, 6, 123000000, time.UTC)))
}

func TestReadCSV_WithoutCreatedAtColumn(t *testing.T) {
	rows, stats, err := ReadCSV(strings.NewReader("\ufeffRegion,Name\neu,Dragons\n"), nowFn)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Read)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.NewClan{Name: "Dragons", Region: "EU"}, rows[0])
}

func TestReadCSV_BadHeader(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""), nowFn)
	assert.EqualError(t, err, "csv is empty")

	_, _, err = ReadCSV(strings.NewReader("name,tag\nDragons,DRG\n"), nowFn)
	assert.EqualError(t, err, `csv header is missing "region" column`)
}

type recordingInserter struct {
	got    []domain.NewClan
	failAt int
}

func (r *recordingInserter) Insert(_ context.Context, in domain.NewClan) (*domain.Clan, error) {
	if r.failAt > 0 && len(r.got)+1 == r.failAt {
		return nil, domain.Storage("insert", errors.New("connection reset"))
	}
	r.got = append(r.got, in)
	return &domain.Clan{Name: in.Name, Region: in.Region}, nil
}

func TestRun(t *testing.T) {
	rows := []domain.NewClan{
		{Name: "Dragons", Region: "EU"},
		{Name: "Wolves", Region: "NA"},
		{Name: "Owls", Region: "ASIA"},
	}

	t.Run("inserts all rows", func(t *testing.T) {
		ins := &recordingInserter{}
		n, err := Run(context.Background(), ins, rows)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, rows, ins.got)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		ins := &recordingInserter{failAt: 2}
		n, err := Run(context.Background(), ins, rows)
		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, domain.KindStorage, domain.KindOf(err))
		assert.Contains(t, err.Error(), "insert row 2 (Wolves/NA)")
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n, err := Run(ctx, &recordingInserter{}, rows)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, n)
	})
}
