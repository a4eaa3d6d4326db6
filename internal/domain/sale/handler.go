package sale

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

// CreateSale handles POST /sales
func (h *Handler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	s, err := h.service.Create(c.Request.Context(), c.GetInt64("agent_id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, s)
}

// GetSale handles GET /sales/:id
func (h *Handler) GetSale(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, s)
}

// ListSales handles GET /sales
func (h *Handler) ListSales(c *gin.Context) {
	f := ListFilter{Limit: 50}
	if cid := c.Query("client_id"); cid != "" {
		if v, err := strconv.ParseInt(cid, 10, 64); err == nil {
			f.ClientID = v
		}
	}
	if a := c.Query("agent_id"); a != "" {
		if v, err := strconv.ParseInt(a, 10, 64); err == nil {
			f.AgentID = v
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

	sales, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, SaleListResponse{Sales: sales, Total: total})
}

// PayInstallment handles POST /sales/:id/installments/:seq/pay
func (h *Handler) PayInstallment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment number")
		return
	}

	ins, err := h.service.MarkInstallmentPaid(c.Request.Context(), c.GetInt64("agent_id"), id, seq)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ins)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid sale ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrSaleNotFound:
		response.Error(c, http.StatusNotFound, "SALE_NOT_FOUND", "Sale not found")
	case ErrClientNotFound:
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case ErrPropertyNotFound:
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	case ErrInstallmentNotFound:
		response.Error(c, http.StatusNotFound, "INSTALLMENT_NOT_FOUND", "Installment not found")
	case ErrPropertySold:
		response.Error(c, http.StatusConflict, "PROPERTY_SOLD", "Property already sold")
	case ErrInvalidPrice:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_PRICE", "Sale price must be positive")
	case ErrInvalidRate:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_RATE", "Commission rate must be between 0 and 100")
	case ErrInvalidInstallments:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_INSTALLMENTS", "Installment count must be at least 1")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
