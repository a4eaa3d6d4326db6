package sale

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.GET("", h.ListSales)
		sales.GET("/:id", h.GetSale)

		sales.POST("", middleware.RequirePermission(policy.OpSaleCreate), h.CreateSale)
		sales.POST("/:id/installments/:seq/pay", middleware.RequirePermission(policy.OpSaleCreate), h.PayInstallment)
	}
}
