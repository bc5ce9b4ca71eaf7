package lifecycle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerdesk/internal/domain/seller"
	"sellerdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sellers/:id/lifecycle", h.Record)
	rg.GET("/sellers/:id/lifecycle", h.ListBySeller)
}

func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Record(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record lifecycle entry")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) ListBySeller(c *gin.Context) {
	entries, err := h.service.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list lifecycle history")
		return
	}
	response.Success(c, http.StatusOK, entries)
}
