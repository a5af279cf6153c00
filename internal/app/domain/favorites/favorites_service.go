package favorites

import (
	"context"

	"go.uber.org/zap"

	"bharatexplore/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Place, error)
	Add(ctx context.Context, userID, placeID int64) (*models.Favorite, error)
	Remove(ctx context.Context, userID, placeID int64) error
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

func (s *ServiceImpl) ListForUser(ctx context.Context, userID int64) ([]models.Place, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *ServiceImpl) Add(ctx context.Context, userID, placeID int64) (*models.Favorite, error) {
	return s.repo.Add(ctx, userID, placeID)
}

func (s *ServiceImpl) Remove(ctx context.Context, userID, placeID int64) error {
	return s.repo.Remove(ctx, userID, placeID)
}
