// Package auth covers account registration, login and token issuance.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bharatexplore/internal/app/common"
	"bharatexplore/internal/app/models"
	"bharatexplore/internal/observability/metrics"
)

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	// GetUserByEmail fetches the full user row, password hash included.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser stores a new user with a hashed password and fills in the ID.
	CreateUser(ctx context.Context, user *models.User) error
}

type PostgresRepository struct {
	logger *zap.Logger
	pgpool common.PGXPool
}

func NewPostgresRepository(pgpool common.PGXPool, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := otel.Tracer("AuthRepository").Start(ctx, "GetUserByEmail", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
	))
	defer span.End()

	var user models.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`
	err := r.pgpool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "No user found")
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		r.logger.Error("Error fetching user by email", zap.Error(err), zap.String("email", email))
		metrics.DBError(ctx, "GetUserByEmail")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, span := otel.Tracer("AuthRepository").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("user.email", user.Email),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "CreateUser"))

	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.pgpool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			l.Warn("Email already registered", zap.String("email", user.Email))
			span.SetStatus(codes.Error, "Email conflict")
			return fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		l.Error("Failed to create user", zap.Error(err))
		metrics.DBError(ctx, "CreateUser")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database insert failed")
		return fmt.Errorf("database error registering user: %w", err)
	}

	span.SetStatus(codes.Ok, "User created")
	l.Info("User registered", zap.Int64("user_id", user.ID))
	return nil
}
