package routes

import (
	"net/http"
	"time"

	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTutorRoutes registers tutor profile and schedule endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		// Public endpoints: registration plus read-only booking data.
		api.POST("/register", hb.Tutors.Register)
		api.GET("/:id", hb.Tutors.GetByID)
		api.GET("/:id/schedule", hb.Schedule.Get)
		api.GET("/:id/booked", hb.Tutors.BookedIntervals)

		// Schedule edits require the owning tutor's token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("tutor"))
		protected.PUT("/:id/schedule", hb.Schedule.Put)
	}
}

// RegisterSessionRoutes registers session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id", hb.Sessions.Get)
		api.POST("/:id/respond", hb.Sessions.Respond)
		api.POST("/:id/cancel", hb.Sessions.Cancel)
	}

	r.GET("/api/notifications", middleware.JWTAuthMiddleware(), hb.Sessions.Notifications)
}

// RegisterAuthRoutes registers token issuance for guest checkout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/guest", hb.Tutors.GuestToken)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
}
