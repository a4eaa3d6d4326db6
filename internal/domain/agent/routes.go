package agent

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

// RegisterRoutes mounts agent administration under /admin/agents.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/agents")
	admin.Use(middleware.RequirePermission(policy.OpAgentManage))
	{
		admin.POST("", h.CreateAgent)
		admin.GET("", h.ListAgents)
		admin.GET("/:id", h.GetAgent)
		admin.PATCH("/:id", h.UpdateAgent)
		admin.POST("/:id/activate", h.ActivateAgent)
		admin.POST("/:id/deactivate", h.DeactivateAgent)
	}
}
