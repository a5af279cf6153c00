// Package routes wires handlers, services and repositories onto the
// gin router.
package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"bharatexplore/internal/app/domain/auth"
	"bharatexplore/internal/app/domain/catalog"
	"bharatexplore/internal/app/domain/favorites"
	"bharatexplore/internal/app/domain/hotels"
	"bharatexplore/internal/app/middleware"
	"bharatexplore/internal/pkg/config"
)

// Setup registers every API route on the router.
func Setup(r *gin.Engine, pool *pgxpool.Pool, cfg *config.Config, logger *zap.Logger) {
	authRepo := auth.NewPostgresRepository(pool, logger)
	authService := auth.NewService(authRepo, cfg.JWT, logger)
	authHandler := auth.NewHandler(authService, logger)

	catalogRepo := catalog.NewPostgresRepository(pool, logger)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)

	favoritesRepo := favorites.NewPostgresRepository(pool, logger)
	favoritesService := favorites.NewService(favoritesRepo, logger)
	favoritesHandler := favorites.NewHandler(favoritesService, logger)

	// A missing API key degrades hotel suggestions to the fallback list
	// instead of blocking startup.
	var generator hotels.Generator
	if geminiGen, err := hotels.NewGeminiGenerator(context.Background(), cfg.Gemini); err != nil {
		logger.Warn("Gemini client unavailable, hotel suggestions will use the fallback list", zap.Error(err))
	} else {
		generator = geminiGen
	}
	hotelsService := hotels.NewService(generator, logger)
	hotelsHandler := hotels.NewHandler(hotelsService, logger)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		api.GET("/regions", catalogHandler.ListRegions)
		api.GET("/regions/:id", catalogHandler.GetRegion)
		api.GET("/places", catalogHandler.ListPlaces)
		api.GET("/places/:id", catalogHandler.GetPlace)
		api.GET("/search", catalogHandler.Search)

		api.GET("/hotels", hotelsHandler.Suggest)

		favoritesGroup := api.Group("/favorites")
		favoritesGroup.Use(middleware.JWTAuth(cfg.JWT, logger))
		{
			favoritesGroup.GET("", favoritesHandler.List)
			favoritesGroup.POST("", favoritesHandler.Add)
			favoritesGroup.DELETE("/:placeId", favoritesHandler.Remove)
		}
	}
}
