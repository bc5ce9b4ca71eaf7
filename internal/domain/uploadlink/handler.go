package uploadlink

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

func (h *Handler) Issue(c *gin.Context) {
	link, err := h.service.Issue(c.Request.Context(), middleware.OperatorID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue upload link")
		return
	}
	response.Success(c, http.StatusCreated, IssueResponse{Token: link.Token, ExpiresAt: link.ExpiresAt})
}

func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, seller.ErrSellerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Seller not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list upload links")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Redeem is the only unauthenticated write in the system; the bearer
// token in the body is the whole credential. NotFound, Expired and
// AlreadyUsed are deliberately indistinguishable to the caller.
func (h *Handler) Redeem(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	doc, err := h.service.Redeem(c.Request.Context(), req)
	if err != nil {
		if IsRedeemFailure(err) {
			response.Error(c, http.StatusBadRequest, "INVALID_OR_EXPIRED_LINK", "Invalid or expired link")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process upload")
		return
	}
	response.Success(c, http.StatusOK, doc)
}
