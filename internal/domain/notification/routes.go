package notification

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	n := rg.Group("/notifications")
	{
		n.GET("", h.List)
		n.GET("/ws", h.Stream)
		n.POST("/:id/read", h.MarkRead)
		n.POST("/read-all", h.MarkAllRead)
	}
}
