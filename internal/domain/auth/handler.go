package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerdesk/internal/pkg/response"
)

// Handler manages HTTP interactions for operator authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	operator, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"operator": OperatorPublic{ID: operator.ID, Email: operator.Email, Name: operator.Name},
		"token":    token,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	operatorID := c.GetInt64("operator_id")
	if operatorID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	operator, err := h.service.GetByID(c.Request.Context(), operatorID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Operator not found")
		return
	}

	response.Success(c, http.StatusOK, OperatorPublic{ID: operator.ID, Email: operator.Email, Name: operator.Name})
}
