package enquiry

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	enquiries := rg.Group("/enquiries")
	{
		enquiries.GET("", h.ListEnquiries)
		enquiries.GET("/:id", h.GetEnquiry)
		enquiries.GET("/:id/notes", h.ListNotes)

		enquiries.POST("", middleware.RequirePermission(policy.OpEnquiryCreate), h.CreateEnquiry)
		enquiries.POST("/import", middleware.RequirePermission(policy.OpEnquiryImport), h.BulkImport)
		enquiries.PATCH("/:id", middleware.RequirePermission(policy.OpEnquiryUpdate), h.UpdateEnquiry)
		enquiries.PATCH("/:id/status", middleware.RequirePermission(policy.OpEnquiryUpdate), h.UpdateStatus)
		enquiries.POST("/:id/assign", middleware.RequirePermission(policy.OpEnquiryAssign), h.AssignAgent)
		enquiries.POST("/:id/pool", middleware.RequirePermission(policy.OpEnquiryAssign), h.AssignPool)
		enquiries.POST("/:id/unassign", middleware.RequirePermission(policy.OpEnquiryAssign), h.Unassign)
		enquiries.POST("/:id/convert", middleware.RequirePermission(policy.OpEnquiryConvert), h.Convert)
		enquiries.POST("/:id/notes", middleware.RequirePermission(policy.OpNoteAdd), h.AddNote)
		enquiries.DELETE("/:id/notes/:noteId", middleware.RequirePermission(policy.OpNoteDelete), h.DeleteNote)
	}
}
