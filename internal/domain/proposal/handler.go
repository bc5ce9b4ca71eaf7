package proposal

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
	rg.POST("/sellers/:id/proposals", h.Create)
	rg.GET("/sellers/:id/proposals", h.ListBySeller)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create proposal")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListBySeller(c *gin.Context) {
	proposals, err := h.service.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list proposals")
		return
	}
	response.Success(c, http.StatusOK, proposals)
}
