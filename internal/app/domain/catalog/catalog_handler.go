package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bharatexplore/internal/app/common"
	"bharatexplore/internal/app/models"
	"bharatexplore/internal/observability/metrics"
)

type Handler struct {
	logger  *zap.Logger
	service Service
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListRegions handles GET /api/regions.
func (h *Handler) ListRegions(c *gin.Context) {
	regions, err := h.service.ListRegions(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, regions)
}

// GetRegion handles GET /api/regions/:id.
func (h *Handler) GetRegion(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		common.RespondError(c, err, "Invalid region id")
		return
	}

	region, err := h.service.GetRegion(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, "Region not found")
		return
	}
	c.JSON(http.StatusOK, region)
}

// ListPlaces handles GET /api/places.
func (h *Handler) ListPlaces(c *gin.Context) {
	places, err := h.service.ListPlaces(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetPlace handles GET /api/places/:id.
func (h *Handler) GetPlace(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		common.RespondError(c, err, "Invalid place id")
		return
	}

	place, err := h.service.GetPlace(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, "Place not found")
		return
	}
	c.JSON(http.StatusOK, place)
}

// Search handles GET /api/search?q=...
func (h *Handler) Search(c *gin.Context) {
	metrics.SearchRequest(c.Request.Context())

	results, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		common.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, results)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, models.ErrBadRequest)
	}
	return id, nil
}
