package booking

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/middleware"
	"estatecrm/internal/pkg/policy"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)

		bookings.POST("", middleware.RequirePermission(policy.OpBookingCreate), h.CreateBooking)
		bookings.POST("/:id/confirm", middleware.RequirePermission(policy.OpBookingUpdate), h.Confirm)
		bookings.POST("/:id/cancel", middleware.RequirePermission(policy.OpBookingUpdate), h.Cancel)
		bookings.POST("/:id/complete", middleware.RequirePermission(policy.OpBookingUpdate), h.Complete)
		bookings.PATCH("/:id/deposit", middleware.RequirePermission(policy.OpBookingUpdate), h.UpdateDeposit)
	}
}
