package routes

import (
	"tutorhive/handlers"
	"tutorhive/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the selection flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.POST("/session/:sessionID/click", hb.Booking.ClickSlot)
		bookingGroup.GET("/session/:sessionID/windows", hb.Booking.Windows)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.Cancel)
	}
}
