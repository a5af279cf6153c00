package favorites

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
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

func TestListForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("FROM favorites f").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "region_id", "name", "description", "history", "best_time", "latitude", "longitude", "image_url", "region_name"}).
			AddRow(int64(10), int64(1), "Munnar", "Hill station", "British resort", "Sep-Mar", 10.0889, 77.0595, "img", "Kerala"))

	places, err := repo.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Munnar", places[0].Name)
	assert.Equal(t, "Kerala", places[0].RegionName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(int64(7), int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	favorite, err := repo.Add(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), favorite.ID)
	assert.Equal(t, int64(7), favorite.UserID)
	assert.Equal(t, int64(10), favorite.PlaceID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavoriteDuplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(int64(7), int64(10)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Add(context.Background(), 7, 10)
	assert.ErrorIs(t, err, models.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavoriteMissingPlace(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(int64(7), int64(404)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Add(context.Background(), 7, 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(int64(7), int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Remove(context.Background(), 7, 10))
	require.NoError(t, mock.ExpectationsWereMet())
}
