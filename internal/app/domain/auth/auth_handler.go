package auth

import (
	"errors"
	"net/http"

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

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	defer func() { metrics.AuthRequest(c.Request.Context(), "register", c.Writer.Status()) }()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Name, email and password are required"})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Email already registered"})
			return
		}
		common.RespondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	defer func() { metrics.AuthRequest(c.Request.Context(), "login", c.Writer.Status()) }()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Email and password are required"})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "User not found"})
		case errors.Is(err, models.ErrUnauthenticated):
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid credentials"})
		default:
			common.RespondError(c, err, "")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
