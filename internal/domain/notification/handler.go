package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// List handles GET /notifications
func (h *Handler) List(c *gin.Context) {
	agentID := c.GetInt64("agent_id")

	limit := 20
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	list, unread, err := h.service.ListForAgent(c.Request.Context(), agentID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

// MarkRead handles POST /notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	agentID := c.GetInt64("agent_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, agentID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkAllRead handles POST /notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	agentID := c.GetInt64("agent_id")

	if err := h.service.MarkAllAsRead(c.Request.Context(), agentID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "All marked as read"})
}

// Stream handles GET /notifications/ws — upgrades to a websocket that
// receives new notifications as they are created.
func (h *Handler) Stream(c *gin.Context) {
	agentID := c.GetInt64("agent_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.ServeWS(conn, agentID)
}
