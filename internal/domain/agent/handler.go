package agent

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/pkg/response"
	"estatecrm/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateAgent handles POST /admin/agents
func (h *Handler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrEmailExists:
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")
		case ErrInvalidRole:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_ROLE", "Unknown role")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// ListAgents handles GET /admin/agents
func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.service.List(c.Request.Context(), c.Query("office"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, AgentListResponse{Agents: agents, Total: len(agents)})
}

// GetAgent handles GET /admin/agents/:id
func (h *Handler) GetAgent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid agent ID")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrAgentNotFound {
			response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}

// UpdateAgent handles PATCH /admin/agents/:id
func (h *Handler) UpdateAgent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid agent ID")
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrAgentNotFound:
			response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
		case ErrInvalidRole:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_ROLE", "Unknown role")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, a)
}

// DeactivateAgent handles POST /admin/agents/:id/deactivate
func (h *Handler) DeactivateAgent(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateAgent handles POST /admin/agents/:id/activate
func (h *Handler) ActivateAgent(c *gin.Context) {
	h.setActive(c, true)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid agent ID")
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, active); err != nil {
		if err == ErrAgentNotFound {
			response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Agent updated"})
}
