package document

import "github.com/gin-gonic/gin"

// RegisterRoutes registers document routes under the protected group.
// Seller-scoped list/create plus edit/delete by document id.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/sellers/:id/documents", h.ListBySeller)
	rg.POST("/sellers/:id/documents", h.Create)

	documents := rg.Group("/documents")
	{
		documents.PUT("/:id", h.Update)
		documents.DELETE("/:id", h.Delete)
	}
}
