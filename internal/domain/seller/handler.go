package seller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerdesk/internal/middleware"
	"sellerdesk/internal/pkg/response"
	"sellerdesk/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid seller data", fieldErrors)
		return
	}

	sl, err := h.service.Create(c.Request.Context(), middleware.OperatorID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create seller")
		return
	}
	response.Success(c, http.StatusCreated, sl)
}

func (h *Handler) List(c *gin.Context) {
	sellers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sellers")
		return
	}
	response.Success(c, http.StatusOK, sellers)
}

func (h *Handler) GetByID(c *gin.Context) {
	sl, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load seller")
		return
	}
	response.Success(c, http.StatusOK, sl)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid seller data", fieldErrors)
		return
	}

	sl, err := h.service.Update(c.Request.Context(), middleware.OperatorID(c), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update seller")
		return
	}
	response.Success(c, http.StatusOK, sl)
}
