package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bharatexplore/internal/app/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockRepository) GetRegion(ctx context.Context, id int64) (*models.RegionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegionDetail), args.Error(1)
}

func (m *MockRepository) ListPlaces(ctx context.Context) ([]models.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

func (m *MockRepository) GetPlace(ctx context.Context, id int64) (*models.PlaceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceDetail), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchResult), args.Error(1)
}

func TestSearchShortQuerySkipsStore(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	for _, q := range []string{"", "a", " ", " a ", "\t"} {
		results, err := svc.Search(context.Background(), q)
		require.NoError(t, err, "query %q", q)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}

	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchTrimsQuery(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("Search", mock.Anything, "goa").Return([]models.SearchResult{
		{Type: "region", ID: 13, Name: "Goa"},
	}, nil)

	results, err := svc.Search(context.Background(), "  goa  ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Goa", results[0].Name)
	repo.AssertExpectations(t)
}
