package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/show-booking/internal/repository"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedFromCSV(t *testing.T) {
	theatres := writeFixture(t, "theatres.csv",
		"id,name,location\n1,Grand Central Cinema,Downtown\n2,Lakeside Multiplex,Lakeside\n")
	shows := writeFixture(t, "shows.csv",
		"id,theatre_id,title,price,seats_available\n1,1,The Long Voyage,100,20\n2,2,Silent Harbour,120,30\n")

	repo := repository.NewShowRepo()
	require.NoError(t, Seed(repo, theatres, shows))

	require.Len(t, repo.Theatres(), 2)
	s, err := repo.Get(1)
	require.NoError(t, err)
	require.Equal(t, "The Long Voyage", s.Title)
	require.Equal(t, int64(100), s.Price)
	require.Equal(t, 20, s.SeatsAvailable)

	inLakeside, err := repo.ByTheatre(2)
	require.NoError(t, err)
	require.Len(t, inLakeside, 1)
}

func TestSeedMissingFilesFallBackToSamples(t *testing.T) {
	repo := repository.NewShowRepo()
	require.NoError(t, Seed(repo, "no-such-theatres.csv", "no-such-shows.csv"))

	require.NotEmpty(t, repo.Theatres())
	_, err := repo.Get(1)
	require.NoError(t, err)
}

func TestSeedRejectsMalformedRows(t *testing.T) {
	theatres := writeFixture(t, "theatres.csv",
		"id,name,location\n1,Grand Central Cinema,Downtown\n")

	cases := []struct {
		name string
		rows string
	}{
		{"short row", "id,theatre_id,title,price,seats_available\n1,1,The Long Voyage\n"},
		{"bad number", "id,theatre_id,title,price,seats_available\n1,1,The Long Voyage,abc,20\n"},
		{"zero price", "id,theatre_id,title,price,seats_available\n1,1,The Long Voyage,0,20\n"},
		{"negative seats", "id,theatre_id,title,price,seats_available\n1,1,The Long Voyage,100,-1\n"},
	}
	for _, tc := range cases {
		shows := writeFixture(t, "shows.csv", tc.rows)
		repo := repository.NewShowRepo()
		require.Error(t, Seed(repo, theatres, shows), tc.name)
	}
}

func TestSeedBadTheatreID(t *testing.T) {
	theatres := writeFixture(t, "theatres.csv", "id,name,location\nx,Grand Central Cinema,Downtown\n")
	shows := writeFixture(t, "shows.csv", "id,theatre_id,title,price,seats_available\n")

	repo := repository.NewShowRepo()
	require.Error(t, Seed(repo, theatres, shows))
}

func TestSeedHeaderOnlyFilesAreEmpty(t *testing.T) {
	theatres := writeFixture(t, "theatres.csv", "id,name,location\n")
	shows := writeFixture(t, "shows.csv", "id,theatre_id,title,price,seats_available\n")

	repo := repository.NewShowRepo()
	require.NoError(t, Seed(repo, theatres, shows))
	require.Empty(t, repo.Theatres())
}
