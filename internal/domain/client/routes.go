package client

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PATCH("/:id", middleware.RequirePermission(policy.OpClientUpdate), h.UpdateClient)
	}
}
