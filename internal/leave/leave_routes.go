package leave

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leave-requests")
	{
		leaves.POST("", handler.Create)
		leaves.GET("/:id", handler.GetByID)
	}
}
