package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListActivities handles GET /activities — the audit trail for one record.
func (h *Handler) ListActivities(c *gin.Context) {
	kind := EntityKind(c.Query("kind"))
	switch kind {
	case KindEnquiry, KindLead, KindBooking, KindSale:
	default:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_KIND", "Unknown entity kind")
		return
	}

	entityID, err := strconv.ParseInt(c.Query("entity_id"), 10, 64)
	if err != nil || entityID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid entity ID")
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := h.repo.ListForEntity(c.Request.Context(), kind, entityID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"activities": entries})
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activities", h.ListActivities)
}
