package client

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

type UpdateClientRequest struct {
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Nationality       *string `json:"nationality"`
	Country           *string `json:"country"`
	BudgetRange       *string `json:"budget_range"`
	InvestmentPurpose *string `json:"investment_purpose"`
}

// GetClient handles GET /clients/:id
func (h *Handler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if cl == nil {
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	response.Success(c, http.StatusOK, cl)
}

// ListClients handles GET /clients
func (h *Handler) ListClients(c *gin.Context) {
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

	clients, total, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clients": clients, "total": total})
}

// UpdateClient handles PATCH /clients/:id
func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if cl == nil {
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	if req.Name != nil {
		cl.Name = *req.Name
	}
	if req.Email != nil {
		cl.Email = *req.Email
	}
	if req.Phone != nil {
		cl.Phone = *req.Phone
	}
	if req.Nationality != nil {
		cl.Nationality = *req.Nationality
	}
	if req.Country != nil {
		cl.Country = *req.Country
	}
	if req.BudgetRange != nil {
		cl.BudgetRange = *req.BudgetRange
	}
	if req.InvestmentPurpose != nil {
		cl.InvestmentPurpose = *req.InvestmentPurpose
	}

	if err := h.repo.Update(c.Request.Context(), cl); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, cl)
}
