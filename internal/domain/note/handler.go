package note

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
	rg.POST("/sellers/:id/notes", h.Create)
	rg.GET("/sellers/:id/notes", h.ListBySeller)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	n, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create note")
		return
	}
	response.Success(c, http.StatusCreated, n)
}

func (h *Handler) ListBySeller(c *gin.Context) {
	notes, err := h.service.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notes")
		return
	}
	response.Success(c, http.StatusOK, notes)
}
