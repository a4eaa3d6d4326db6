package lead

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/policy"
	"estatecrm/internal/pkg/response"
	"estatecrm/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateLead handles POST /leads
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// GetLead handles GET /leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l)
}

// ListLeads handles GET /leads
func (h *Handler) ListLeads(c *gin.Context) {
	f := ListFilter{
		Stage: Stage(c.Query("stage")),
		Limit: 50,
	}
	if cid := c.Query("client_id"); cid != "" {
		if v, err := strconv.ParseInt(cid, 10, 64); err == nil {
			f.ClientID = v
		}
	}
	if p := c.Query("pool"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			f.Pool = v
		}
	}
	if a := c.Query("agent_id"); a != "" {
		if v, err := strconv.ParseInt(a, 10, 64); err == nil {
			f.OwnerAgentID = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	leads, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, LeadListResponse{Leads: leads, Total: total})
}

// Board handles GET /leads/board — kanban column counts.
func (h *Handler) Board(c *gin.Context) {
	counts, err := h.service.Board(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, counts)
}

// UpdateLead handles PATCH /leads/:id
func (h *Handler) UpdateLead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l)
}

// UpdateStage handles PATCH /leads/:id/stage
func (h *Handler) UpdateStage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.UpdateStage(c.Request.Context(), c.GetInt64("agent_id"), id, Stage(req.Stage), req.LostReason); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Stage updated"})
}

// AssignAgent handles POST /leads/:id/assign
func (h *Handler) AssignAgent(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.AssignAgent(c.Request.Context(), c.GetInt64("agent_id"), id, req.AgentID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Lead assigned"})
}

// AssignPool handles POST /leads/:id/pool
func (h *Handler) AssignPool(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.AssignPool(c.Request.Context(), c.GetInt64("agent_id"), id, req.Pool); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Lead moved to pool"})
}

// Unassign handles POST /leads/:id/unassign
func (h *Handler) Unassign(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Unassign(c.Request.Context(), c.GetInt64("agent_id"), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Lead unassigned"})
}

// AddNote handles POST /leads/:id/notes
func (h *Handler) AddNote(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	n, err := h.service.AddNote(c.Request.Context(), c.GetInt64("agent_id"), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, n)
}

// ListNotes handles GET /leads/:id/notes
func (h *Handler) ListNotes(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	notes, err := h.service.ListNotes(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// DeleteNote handles DELETE /leads/:id/notes/:noteId
func (h *Handler) DeleteNote(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	noteID, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid note ID")
		return
	}

	role := policy.Role(c.GetString("role"))
	if err := h.service.DeleteNote(c.Request.Context(), c.GetInt64("agent_id"), role, id, noteID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Note deleted"})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrLeadNotFound:
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
	case ErrClientNotFound:
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case agent.ErrAgentNotFound:
		response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
	case ErrNoteNotFound:
		response.Error(c, http.StatusNotFound, "NOTE_NOT_FOUND", "Note not found")
	case ErrInvalidStage:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STAGE", "Unknown lead stage")
	case ErrLostNeedsReason:
		response.Error(c, http.StatusUnprocessableEntity, "LOST_NEEDS_REASON", "Moving a lead to lost requires a reason")
	case ErrInvalidContact:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_CONTACT_TYPE", "Unknown contact type")
	case ErrNoteNotAllowed:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to delete this note")
	case ownership.ErrInvalidPool:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_POOL", "Pool must be between 1 and 3")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
