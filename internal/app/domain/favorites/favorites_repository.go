// Package favorites maintains each user's saved places.
package favorites

import (
	"context"
	"errors"
	"fmt"

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
	// ListForUser returns the user's favorite places, region name included.
	ListForUser(ctx context.Context, userID int64) ([]models.Place, error)
	// Add saves a place for the user. Saving twice is a conflict;
	// a missing place maps to not-found.
	Add(ctx context.Context, userID, placeID int64) (*models.Favorite, error)
	// Remove deletes the favorite. Removing an absent favorite is a no-op.
	Remove(ctx context.Context, userID, placeID int64) error
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

func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]models.Place, error) {
	ctx, span := otel.Tracer("FavoritesRepository").Start(ctx, "ListForUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	rows, err := r.pgpool.Query(ctx,
		`SELECT p.id, p.region_id, p.name, p.description, p.history, p.best_time,
		        p.latitude, p.longitude, p.image_url, r.name AS region_name
		 FROM favorites f
		 JOIN places p ON p.id = f.place_id
		 JOIN regions r ON r.id = p.region_id
		 WHERE f.user_id = $1
		 ORDER BY f.id`, userID)
	if err != nil {
		r.logger.Error("Error listing favorites", zap.Error(err), zap.Int64("user_id", userID))
		metrics.DBError(ctx, "ListForUser")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error listing favorites: %w", err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		var place models.Place
		if err := rows.Scan(&place.ID, &place.RegionID, &place.Name, &place.Description, &place.History,
			&place.BestTime, &place.Latitude, &place.Longitude, &place.ImageURL, &place.RegionName); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning favorite: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing favorites: %w", err)
	}
	return places, nil
}

func (r *PostgresRepository) Add(ctx context.Context, userID, placeID int64) (*models.Favorite, error) {
	ctx, span := otel.Tracer("FavoritesRepository").Start(ctx, "Add", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("user.id", userID),
		attribute.Int64("place.id", placeID),
	))
	defer span.End()

	l := r.logger.With(zap.String("method", "Add"), zap.Int64("user_id", userID), zap.Int64("place_id", placeID))

	favorite := &models.Favorite{UserID: userID, PlaceID: placeID}
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO favorites (user_id, place_id) VALUES ($1, $2) RETURNING id`,
		userID, placeID,
	).Scan(&favorite.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				l.Warn("Place already in favorites")
				span.SetStatus(codes.Error, "Duplicate favorite")
				return nil, fmt.Errorf("place already in favorites: %w", models.ErrConflict)
			case "23503":
				l.Warn("Favorite references missing row")
				span.SetStatus(codes.Error, "Missing referenced row")
				return nil, fmt.Errorf("place %d: %w", placeID, models.ErrNotFound)
			}
		}
		l.Error("Failed to add favorite", zap.Error(err))
		metrics.DBError(ctx, "Add")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database insert failed")
		return nil, fmt.Errorf("database error adding favorite: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorite added")
	return favorite, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, placeID int64) error {
	ctx, span := otel.Tracer("FavoritesRepository").Start(ctx, "Remove", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("user.id", userID),
		attribute.Int64("place.id", placeID),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`, userID, placeID)
	if err != nil {
		r.logger.Error("Failed to remove favorite", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("place_id", placeID))
		metrics.DBError(ctx, "Remove")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database delete failed")
		return fmt.Errorf("database error removing favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug("Favorite already absent",
			zap.Int64("user_id", userID), zap.Int64("place_id", placeID))
	}
	span.SetStatus(codes.Ok, "Favorite removed")
	return nil
}
