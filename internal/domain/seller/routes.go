package seller

import "github.com/gin-gonic/gin"

// RegisterRoutes registers seller routes under the protected group.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	sellers := rg.Group("/sellers")
	{
		sellers.POST("", h.Create)
		sellers.GET("", h.List)
		sellers.GET("/:id", h.GetByID)
		sellers.PUT("/:id", h.Update)
	}
}
