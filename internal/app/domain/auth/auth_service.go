package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bharatexplore/internal/app/models"
	"bharatexplore/internal/pkg/config"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
	jwtCfg config.JWTConfig
}

func NewService(repo Repository, jwtCfg config.JWTConfig, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		jwtCfg: jwtCfg,
	}
}

func (s *ServiceImpl) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	l := s.logger.With(zap.String("method", "Register"), zap.String("email", email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := GenerateToken(s.jwtCfg, user.ID, user.Email, user.Name)
	if err != nil {
		l.Error("Failed to issue token", zap.Error(err))
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  models.PublicUser{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}

func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	l := s.logger.With(zap.String("method", "Login"), zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			l.Warn("Password mismatch")
			return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
		}
		l.Error("Error comparing password hash", zap.Error(err))
		return nil, fmt.Errorf("error during password comparison: %w", err)
	}

	token, err := GenerateToken(s.jwtCfg, user.ID, user.Email, user.Name)
	if err != nil {
		l.Error("Failed to issue token", zap.Error(err))
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  models.PublicUser{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}
