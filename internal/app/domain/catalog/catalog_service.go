package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bharatexplore/internal/app/models"
)

// minSearchQueryLen is the shortest query worth hitting the database for.
const minSearchQueryLen = 2

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetRegion(ctx context.Context, id int64) (*models.RegionDetail, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	GetPlace(ctx context.Context, id int64) (*models.PlaceDetail, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
}

func NewService(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.repo.ListRegions(ctx)
}

func (s *ServiceImpl) GetRegion(ctx context.Context, id int64) (*models.RegionDetail, error) {
	return s.repo.GetRegion(ctx, id)
}

func (s *ServiceImpl) ListPlaces(ctx context.Context) ([]models.Place, error) {
	return s.repo.ListPlaces(ctx)
}

func (s *ServiceImpl) GetPlace(ctx context.Context, id int64) (*models.PlaceDetail, error) {
	return s.repo.GetPlace(ctx, id)
}

// Search returns an empty slice for blank or single-character queries
// without touching the store.
func (s *ServiceImpl) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minSearchQueryLen {
		return []models.SearchResult{}, nil
	}
	return s.repo.Search(ctx, trimmed)
}
