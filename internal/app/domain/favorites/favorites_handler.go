package favorites

import (
	"errors"
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

type addRequest struct {
	PlaceID int64 `json:"placeId" binding:"required"`
}

// List handles GET /api/favorites.
func (h *Handler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		common.RespondError(c, models.ErrUnauthenticated, "Authentication required")
		return
	}

	places, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, places)
}

// Add handles POST /api/favorites.
func (h *Handler) Add(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		common.RespondError(c, models.ErrUnauthenticated, "Authentication required")
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "placeId is required"})
		return
	}

	if _, err := h.service.Add(c.Request.Context(), userID, req.PlaceID); err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Already in favorites"})
		case errors.Is(err, models.ErrNotFound):
			common.RespondError(c, err, "Place not found")
		default:
			common.RespondError(c, err, "")
		}
		return
	}

	metrics.FavoriteAction(c.Request.Context(), "add")
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites"})
}

// Remove handles DELETE /api/favorites/:placeId.
func (h *Handler) Remove(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		common.RespondError(c, models.ErrUnauthenticated, "Authentication required")
		return
	}

	placeID, err := strconv.ParseInt(c.Param("placeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid place id"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, placeID); err != nil {
		common.RespondError(c, err, "")
		return
	}
	metrics.FavoriteAction(c.Request.Context(), "remove")
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// userIDFromContext reads the authenticated user's ID placed on the
// context by the JWT middleware. The ID from the token is the only
// identity the handlers trust.
func userIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
