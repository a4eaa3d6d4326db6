package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/domain/agent"
	"estatecrm/internal/pkg/response"
	"estatecrm/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		case ErrAgentDisabled:
			response.Error(c, http.StatusForbidden, "AGENT_DISABLED", "Account is disabled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Me handles GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	agentID := c.GetInt64("agent_id")

	a, err := h.service.Me(c.Request.Context(), agentID)
	if err != nil {
		if err == agent.ErrAgentNotFound {
			response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "Agent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}
