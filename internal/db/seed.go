package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"bharatexplore/internal/app/common"
)

//go:embed seed_data.json
var seedJSON []byte

// seedThreshold is the minimum number of regions considered a complete
// catalog. Anything below it triggers a full reseed.
const seedThreshold = 10

type seedAttraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type seedPlace struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	History     string           `json:"history"`
	BestTime    string           `json:"best_time"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	ImageURL    string           `json:"image_url"`
	Attractions []seedAttraction `json:"attractions"`
}

type seedRegion struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Culture     string      `json:"culture"`
	Cuisine     string      `json:"cuisine"`
	ImageURL    string      `json:"image_url"`
	Places      []seedPlace `json:"places"`
}

type seedFile struct {
	Regions []seedRegion `json:"regions"`
}

// SeedIfEmpty loads the embedded catalog fixture when the regions table
// holds fewer than seedThreshold rows. A partial catalog is cleared and
// rebuilt in full so the data set stays internally consistent.
func SeedIfEmpty(ctx context.Context, pool common.PGXPool, logger *zap.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM regions").Scan(&count); err != nil {
		return fmt.Errorf("counting regions: %w", err)
	}
	if count >= seedThreshold {
		logger.Info("Catalog already seeded", zap.Int("regions", count))
		return nil
	}

	var fixture seedFile
	if err := json.Unmarshal(seedJSON, &fixture); err != nil {
		return fmt.Errorf("parsing seed fixture: %w", err)
	}

	logger.Info("Seeding catalog", zap.Int("existing_regions", count), zap.Int("fixture_regions", len(fixture.Regions)))

	// Favorites reference places, so they go first.
	for _, table := range []string{"attractions", "favorites", "places", "regions"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, region := range fixture.Regions {
		var regionID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO regions (name, description, culture, cuisine, image_url)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			region.Name, region.Description, region.Culture, region.Cuisine, region.ImageURL,
		).Scan(&regionID)
		if err != nil {
			return fmt.Errorf("inserting region %q: %w", region.Name, err)
		}

		for _, place := range region.Places {
			var placeID int64
			err := pool.QueryRow(ctx,
				`INSERT INTO places (region_id, name, description, history, best_time, latitude, longitude, image_url)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
				regionID, place.Name, place.Description, place.History, place.BestTime,
				place.Latitude, place.Longitude, place.ImageURL,
			).Scan(&placeID)
			if err != nil {
				return fmt.Errorf("inserting place %q: %w", place.Name, err)
			}

			for _, attraction := range place.Attractions {
				_, err := pool.Exec(ctx,
					"INSERT INTO attractions (place_id, name, description) VALUES ($1, $2, $3)",
					placeID, attraction.Name, attraction.Description,
				)
				if err != nil {
					return fmt.Errorf("inserting attraction %q: %w", attraction.Name, err)
				}
			}
		}
	}

	logger.Info("Catalog seed complete", zap.Int("regions", len(fixture.Regions)))
	return nil
}
