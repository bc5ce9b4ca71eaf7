package document

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create document")
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) ListBySeller(c *gin.Context) {
	docs, err := h.service.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list documents")
		return
	}
	response.Success(c, http.StatusOK, docs)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update document")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete document")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
