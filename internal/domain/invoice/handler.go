package invoice

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerdesk/internal/domain/payment"
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
	rg.POST("/payments/:id/invoices", h.Generate)
	rg.GET("/payments/:id/invoices", h.ListByPayment)
	rg.GET("/invoices/:id/download", h.Download)
}

func (h *Handler) Generate(c *gin.Context) {
	inv, err := h.service.Generate(c.Request.Context(), middleware.OperatorID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate invoice")
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

func (h *Handler) ListByPayment(c *gin.Context) {
	invoices, err := h.service.ListByPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
		return
	}
	response.Success(c, http.StatusOK, invoices)
}

func (h *Handler) Download(c *gin.Context) {
	inv, out, err := h.service.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvoiceNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, inv.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", out)
}
