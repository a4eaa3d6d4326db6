package property

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

// ListProperties handles GET /properties
func (h *Handler) ListProperties(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	props, total, err := h.repo.List(c.Request.Context(), Status(c.Query("status")), c.Query("project"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": props, "total": total})
}

// GetProperty handles GET /properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	props := rg.Group("/properties")
	{
		props.GET("", h.ListProperties)
		props.GET("/:id", h.GetProperty)
	}
}
