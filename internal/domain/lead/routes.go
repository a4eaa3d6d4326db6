package lead

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("/leads")
	{
		leads.GET("", h.ListLeads)
		leads.GET("/board", h.Board)
		leads.GET("/:id", h.GetLead)
		leads.GET("/:id/notes", h.ListNotes)

		leads.POST("", middleware.RequirePermission(policy.OpLeadCreate), h.CreateLead)
		leads.PATCH("/:id", middleware.RequirePermission(policy.OpLeadUpdate), h.UpdateLead)
		leads.PATCH("/:id/stage", middleware.RequirePermission(policy.OpLeadStage), h.UpdateStage)
		leads.POST("/:id/assign", middleware.RequirePermission(policy.OpLeadAssign), h.AssignAgent)
		leads.POST("/:id/pool", middleware.RequirePermission(policy.OpLeadAssign), h.AssignPool)
		leads.POST("/:id/unassign", middleware.RequirePermission(policy.OpLeadAssign), h.Unassign)
		leads.POST("/:id/notes", middleware.RequirePermission(policy.OpNoteAdd), h.AddNote)
		leads.DELETE("/:id/notes/:noteId", middleware.RequirePermission(policy.OpNoteDelete), h.DeleteNote)
	}
}
