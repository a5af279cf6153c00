// Package catalog serves the travel catalog: regions, places, attractions
// and free-text search across them.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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
	ListRegions(ctx context.Context) ([]models.Region, error)
	// GetRegion returns the region with its places.
	GetRegion(ctx context.Context, id int64) (*models.RegionDetail, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	// GetPlace returns the place with its attractions.
	GetPlace(ctx context.Context, id int64) (*models.PlaceDetail, error)
	// Search matches regions and places by name, case-insensitively.
	// Regions come before places in the result.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
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

func (r *PostgresRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "ListRegions", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
	))
	defer span.End()

	rows, err := r.pgpool.Query(ctx,
		`SELECT id, name, description, culture, cuisine, image_url FROM regions ORDER BY name`)
	if err != nil {
		r.logger.Error("Error listing regions", zap.Error(err))
		metrics.DBError(ctx, "ListRegions")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error listing regions: %w", err)
	}
	defer rows.Close()

	regions := make([]models.Region, 0)
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Description, &region.Culture, &region.Cuisine, &region.ImageURL); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning region: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing regions: %w", err)
	}
	return regions, nil
}

func (r *PostgresRepository) GetRegion(ctx context.Context, id int64) (*models.RegionDetail, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "GetRegion", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("region.id", id),
	))
	defer span.End()

	var detail models.RegionDetail
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, name, description, culture, cuisine, image_url FROM regions WHERE id = $1`, id).
		Scan(&detail.ID, &detail.Name, &detail.Description, &detail.Culture, &detail.Cuisine, &detail.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "Region not found")
			return nil, fmt.Errorf("region %d: %w", id, models.ErrNotFound)
		}
		r.logger.Error("Error fetching region", zap.Error(err), zap.Int64("region_id", id))
		metrics.DBError(ctx, "GetRegion")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error fetching region: %w", err)
	}

	rows, err := r.pgpool.Query(ctx,
		`SELECT id, region_id, name, description, history, best_time, latitude, longitude, image_url
		 FROM places WHERE region_id = $1 ORDER BY name`, id)
	if err != nil {
		r.logger.Error("Error listing region places", zap.Error(err), zap.Int64("region_id", id))
		metrics.DBError(ctx, "GetRegion")
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing region places: %w", err)
	}
	defer rows.Close()

	detail.Places = make([]models.Place, 0)
	for rows.Next() {
		var place models.Place
		if err := rows.Scan(&place.ID, &place.RegionID, &place.Name, &place.Description, &place.History,
			&place.BestTime, &place.Latitude, &place.Longitude, &place.ImageURL); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning place: %w", err)
		}
		detail.Places = append(detail.Places, place)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing region places: %w", err)
	}
	return &detail, nil
}

func (r *PostgresRepository) ListPlaces(ctx context.Context) ([]models.Place, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "ListPlaces", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
	))
	defer span.End()

	rows, err := r.pgpool.Query(ctx,
		`SELECT p.id, p.region_id, p.name, p.description, p.history, p.best_time,
		        p.latitude, p.longitude, p.image_url, r.name AS region_name
		 FROM places p JOIN regions r ON r.id = p.region_id
		 ORDER BY p.name`)
	if err != nil {
		r.logger.Error("Error listing places", zap.Error(err))
		metrics.DBError(ctx, "ListPlaces")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error listing places: %w", err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		var place models.Place
		if err := rows.Scan(&place.ID, &place.RegionID, &place.Name, &place.Description, &place.History,
			&place.BestTime, &place.Latitude, &place.Longitude, &place.ImageURL, &place.RegionName); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing places: %w", err)
	}
	return places, nil
}

func (r *PostgresRepository) GetPlace(ctx context.Context, id int64) (*models.PlaceDetail, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "GetPlace", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.Int64("place.id", id),
	))
	defer span.End()

	var detail models.PlaceDetail
	err := r.pgpool.QueryRow(ctx,
		`SELECT p.id, p.region_id, p.name, p.description, p.history, p.best_time,
		        p.latitude, p.longitude, p.image_url, r.name AS region_name
		 FROM places p JOIN regions r ON r.id = p.region_id
		 WHERE p.id = $1`, id).
		Scan(&detail.ID, &detail.RegionID, &detail.Name, &detail.Description, &detail.History,
			&detail.BestTime, &detail.Latitude, &detail.Longitude, &detail.ImageURL, &detail.RegionName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "Place not found")
			return nil, fmt.Errorf("place %d: %w", id, models.ErrNotFound)
		}
		r.logger.Error("Error fetching place", zap.Error(err), zap.Int64("place_id", id))
		metrics.DBError(ctx, "GetPlace")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error fetching place: %w", err)
	}

	rows, err := r.pgpool.Query(ctx,
		`SELECT id, place_id, name, description FROM attractions WHERE place_id = $1 ORDER BY name`, id)
	if err != nil {
		r.logger.Error("Error listing attractions", zap.Error(err), zap.Int64("place_id", id))
		metrics.DBError(ctx, "GetPlace")
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing attractions: %w", err)
	}
	defer rows.Close()

	detail.Attractions = make([]models.Attraction, 0)
	for rows.Next() {
		var attraction models.Attraction
		if err := rows.Scan(&attraction.ID, &attraction.PlaceID, &attraction.Name, &attraction.Description); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning attraction: %w", err)
		}
		detail.Attractions = append(detail.Attractions, attraction)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error listing attractions: %w", err)
	}
	return &detail, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "Search", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("search.query", query),
	))
	defer span.End()

	pattern := "%" + query + "%"
	rows, err := r.pgpool.Query(ctx,
		`SELECT 'region' AS type, id, name, description, image_url, 0 AS rank
		 FROM regions WHERE name ILIKE $1
		 UNION ALL
		 SELECT 'place' AS type, id, name, description, image_url, 1 AS rank
		 FROM places WHERE name ILIKE $1
		 ORDER BY rank, name`, pattern)
	if err != nil {
		r.logger.Error("Error searching catalog", zap.Error(err), zap.String("query", query))
		metrics.DBError(ctx, "Search")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("database error searching catalog: %w", err)
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var result models.SearchResult
		var rank int
		if err := rows.Scan(&result.Type, &result.ID, &result.Name, &result.Description, &result.ImageURL, &rank); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning search result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("database error searching catalog: %w", err)
	}
	return results, nil
}
