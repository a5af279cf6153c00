package hotels

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bharatexplore/internal/app/common"
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

// Suggest handles GET /api/hotels?place=...&lat=...&lng=...
func (h *Handler) Suggest(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Place name is required"})
		return
	}

	hotels := h.service.SuggestHotels(c.Request.Context(), place, c.Query("lat"), c.Query("lng"))
	c.JSON(http.StatusOK, hotels)
}
