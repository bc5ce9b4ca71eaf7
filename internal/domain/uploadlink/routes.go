package uploadlink

import "github.com/gin-gonic/gin"

// RegisterProtectedRoutes registers the operator-facing issue/list
// routes.
func RegisterProtectedRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/sellers/:id/upload-links", h.Issue)
	rg.GET("/sellers/:id/upload-links", h.List)
}

// RegisterPublicRoutes registers the anonymous redeem endpoint.
func RegisterPublicRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/upload", h.Redeem)
}
