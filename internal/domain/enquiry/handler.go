package enquiry

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

// CreateEnquiry handles POST /enquiries
func (h *Handler) CreateEnquiry(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	e, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, e)
}

// BulkImport handles POST /enquiries/import
func (h *Handler) BulkImport(c *gin.Context) {
	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	res, err := h.service.BulkImport(c.Request.Context(), &req)
	if err != nil {
		if err == ErrNothingToImport {
			response.Error(c, http.StatusUnprocessableEntity, "EMPTY_IMPORT", "Nothing to import")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// GetEnquiry handles GET /enquiries/:id
func (h *Handler) GetEnquiry(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// ListEnquiries handles GET /enquiries
func (h *Handler) ListEnquiries(c *gin.Context) {
	f := ListFilter{
		Status: Status(c.Query("status")),
		Search: c.Query("q"),
		Limit:  50,
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

	enquiries, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, EnquiryListResponse{Enquiries: enquiries, Total: total})
}

// UpdateEnquiry handles PATCH /enquiries/:id
func (h *Handler) UpdateEnquiry(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// UpdateStatus handles PATCH /enquiries/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.GetInt64("agent_id"), id, Status(req.Status)); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Status updated"})
}

// AssignAgent handles POST /enquiries/:id/assign
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

	response.Success(c, http.StatusOK, gin.H{"message": "Enquiry assigned"})
}

// AssignPool handles POST /enquiries/:id/pool
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

	response.Success(c, http.StatusOK, gin.H{"message": "Enquiry moved to pool"})
}

// Unassign handles POST /enquiries/:id/unassign
func (h *Handler) Unassign(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Unassign(c.Request.Context(), c.GetInt64("agent_id"), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Enquiry unassigned"})
}

// Convert handles POST /enquiries/:id/convert
func (h *Handler) Convert(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	res, err := h.service.Convert(c.Request.Context(), c.GetInt64("agent_id"), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// AddNote handles POST /enquiries/:id/notes
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

// ListNotes handles GET /enquiries/:id/notes
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

// DeleteNote handles DELETE /enquiries/:id/notes/:noteId
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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid enquiry ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrEnquiryNotFound:
		response.Error(c, http.StatusNotFound, "ENQUIRY_NOT_FOUND", "Enquiry not found")
	case agent.ErrAgentNotFound:
		response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
	case ErrNoteNotFound:
		response.Error(c, http.StatusNotFound, "NOTE_NOT_FOUND", "Note not found")
	case ErrAlreadyConverted:
		response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Enquiry already converted")
	case ErrStatusReserved:
		response.Error(c, http.StatusUnprocessableEntity, "STATUS_RESERVED", "Converted status is set by conversion only")
	case ErrInvalidStatus:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown enquiry status")
	case ErrBlankLeadTitle:
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Lead title must not be blank")
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
