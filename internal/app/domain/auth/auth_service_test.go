package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bharatexplore/internal/app/models"
	"bharatexplore/internal/pkg/config"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "bharat-explore",
		Audience:  "bharat-explore-app",
	}
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTConfig(), zap.NewNop())

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The service must never store the plain password.
		return u.Email == "asha@example.com" && u.PasswordHash != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 42
	}).Return(nil)

	resp, err := svc.Register(context.Background(), "Asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.User.ID)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, "Asha", resp.User.Name)

	claims, err := ValidateToken(testJWTConfig(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Nil(t, claims.ExpiresAt, "no TTL configured, token should not expire")

	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTConfig(), zap.NewNop())

	repo.On("CreateUser", mock.Anything, mock.Anything).
		Return(fmt.Errorf("email already registered: %w", models.ErrConflict))

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "secret123")
	assert.ErrorIs(t, err, models.ErrConflict)
	repo.AssertExpectations(t)
}

func TestLoginRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testJWTConfig(), zap.NewNop())

	repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(&models.User{
		ID:           7,
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}, nil)

	resp, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)

	claims, err := ValidateToken(testJWTConfig(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	repo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testJWTConfig(), zap.NewNop())

	repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(&models.User{
		ID:           7,
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	repo.AssertExpectations(t)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTConfig(), zap.NewNop())

	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("user with email ghost@example.com: %w", models.ErrNotFound))

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, models.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestGenerateTokenExpiryFollowsTTL(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenTTL = time.Hour

	token, err := GenerateToken(cfg, 1, "a@example.com", "A")
	require.NoError(t, err)

	claims, err := ValidateToken(cfg, token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(), 1, "a@example.com", "A")
	require.NoError(t, err)

	other := testJWTConfig()
	other.SecretKey = "another-secret"
	_, err = ValidateToken(other, token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignIssuer(t *testing.T) {
	// Same secret, different issuer: a token minted for another
	// deployment must not validate here.
	foreign := testJWTConfig()
	foreign.Issuer = "someone-else"
	token, err := GenerateToken(foreign, 1, "a@example.com", "A")
	require.NoError(t, err)

	_, err = ValidateToken(testJWTConfig(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateTokenRejectsForeignAudience(t *testing.T) {
	foreign := testJWTConfig()
	foreign.Audience = "some-other-app"
	token, err := GenerateToken(foreign, 1, "a@example.com", "A")
	require.NoError(t, err)

	_, err = ValidateToken(testJWTConfig(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}
