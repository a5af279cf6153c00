package catalog

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bharatexplore/internal/app/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock, zap.NewNop()), mock
}

func TestListRegions(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("SELECT id, name, description, culture, cuisine, image_url FROM regions").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "culture", "cuisine", "image_url"}).
			AddRow(int64(1), "Kerala", "God's Own Country", "Kathakali", "Sadhya", "img1").
			AddRow(int64(2), "Rajasthan", "The Land of Kings", "Ghoomar", "Dal Baati", "img2"))

	regions, err := repo.ListRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "Kerala", regions[0].Name)
	assert.Equal(t, int64(2), regions[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRegionWithPlaces(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("SELECT id, name, description, culture, cuisine, image_url FROM regions WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "culture", "cuisine", "image_url"}).
			AddRow(int64(1), "Kerala", "God's Own Country", "Kathakali", "Sadhya", "img"))
	mock.ExpectQuery("FROM places WHERE region_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "region_id", "name", "description", "history", "best_time", "latitude", "longitude", "image_url"}).
			AddRow(int64(10), int64(1), "Munnar", "Hill station", "British resort", "Sep-Mar", 10.0889, 77.0595, "img"))

	detail, err := repo.GetRegion(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Kerala", detail.Name)
	require.Len(t, detail.Places, 1)
	assert.Equal(t, "Munnar", detail.Places[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRegionNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("FROM regions WHERE id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetRegion(context.Background(), 99)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlaceWithAttractions(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("FROM places p JOIN regions r").
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "region_id", "name", "description", "history", "best_time", "latitude", "longitude", "image_url", "region_name"}).
			AddRow(int64(10), int64(1), "Munnar", "Hill station", "British resort", "Sep-Mar", 10.0889, 77.0595, "img", "Kerala"))
	mock.ExpectQuery("FROM attractions WHERE place_id").
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "place_id", "name", "description"}).
			AddRow(int64(100), int64(10), "Tea Museum", "Tea history").
			AddRow(int64(101), int64(10), "Eravikulam National Park", "Nilgiri Tahr"))

	detail, err := repo.GetPlace(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Kerala", detail.RegionName)
	require.Len(t, detail.Attractions, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlaceNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("FROM places p JOIN regions r").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetPlace(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRegionsBeforePlaces(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("UNION ALL").
		WithArgs("%kerala%").
		WillReturnRows(pgxmock.NewRows([]string{"type", "id", "name", "description", "image_url", "rank"}).
			AddRow("region", int64(1), "Kerala", "God's Own Country", "img1", 0).
			AddRow("place", int64(10), "Kerala Backwaters", "Houseboat cruises", "img2", 1))

	results, err := repo.Search(context.Background(), "kerala")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "region", results[0].Type)
	assert.Equal(t, "place", results[1].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchMatchesNamesOnly(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	// Both arms must filter on the name column alone; a description
	// match ("vibrant" appears in region descriptions) is not a hit.
	mock.ExpectQuery(`(?s)FROM regions WHERE name ILIKE \$1\s+UNION ALL.*FROM places WHERE name ILIKE \$1\s+ORDER BY rank, name`).
		WithArgs("%vibrant%").
		WillReturnRows(pgxmock.NewRows([]string{"type", "id", "name", "description", "image_url", "rank"}))

	results, err := repo.Search(context.Background(), "vibrant")
	require.NoError(t, err)
	assert.Empty(t, results)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchNoMatches(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("UNION ALL").
		WithArgs("%zzzz%").
		WillReturnRows(pgxmock.NewRows([]string{"type", "id", "name", "description", "image_url", "rank"}))

	results, err := repo.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	require.NoError(t, mock.ExpectationsWereMet())
}
