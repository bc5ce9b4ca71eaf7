package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerdesk/internal/domain/seller"
	"sellerdesk/internal/middleware"
	"sellerdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sellers/:id/payments", h.Create)
	rg.GET("/sellers/:id/payments", h.ListBySeller)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.OperatorID(c), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListBySeller(c *gin.Context) {
	payments, err := h.service.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, payments)
}
