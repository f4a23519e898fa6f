package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mesikahq/family-health/internal/auth"
	"github.com/mesikahq/family-health/internal/middleware"
)

type Router struct {
	handler        *Handler
	authMiddleware *auth.Middleware
}

func NewRouter(handler *Handler, authService auth.Service) *Router {
	return &Router{
		handler:        handler,
		authMiddleware: auth.NewMiddleware(authService),
	}
}

func (r *Router) SetupRouter(logger *zap.Logger, timeout time.Duration) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.SecurityHeaders(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.RateLimit(rate.Every(time.Second), 30),
		middleware.CORS(),
	)
	if timeout > 0 {
		router.Use(middleware.Timeout(timeout))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", r.handler.Login)
			authGroup.POST("/logout", r.authMiddleware.RequireLogin(), r.handler.Logout)
		}

		protected := api.Group("")
		protected.Use(r.authMiddleware.RequireLogin())
		{
			members := protected.Group("/family-members")
			{
				members.GET("", r.handler.ListFamilyMembers)
				members.POST("", r.handler.CreateFamilyMember)
				members.GET("/:id", r.handler.GetFamilyMember)
				members.GET("/:id/counts", r.handler.GetFamilyMemberCounts)
				members.PUT("/:id", r.handler.UpdateFamilyMember)
				members.DELETE("/:id", r.handler.DeleteFamilyMember)
			}

			medications := protected.Group("/medications")
			{
				medications.GET("", r.handler.ListMedications)
				medications.GET("/summary", r.handler.GetMedicationSummary)
				medications.POST("", r.handler.CreateMedication)
				medications.GET("/:id", r.handler.GetMedication)
				medications.PUT("/:id", r.handler.UpdateMedication)
				medications.POST("/:id/active", r.handler.SetMedicationActive)
				medications.DELETE("/:id", r.handler.DeleteMedication)
			}

			appointments := protected.Group("/appointments")
			{
				appointments.GET("", r.handler.ListAppointments)
				appointments.GET("/summary", r.handler.GetAppointmentSummary)
				appointments.POST("", r.handler.CreateAppointment)
				appointments.GET("/:id", r.handler.GetAppointment)
				appointments.PUT("/:id", r.handler.UpdateAppointment)
				appointments.POST("/:id/status", r.handler.ChangeAppointmentStatus)
				appointments.DELETE("/:id", r.handler.DeleteAppointment)
			}

			records := protected.Group("/health-records")
			{
				records.GET("", r.handler.ListHealthRecords)
				records.POST("", r.handler.CreateHealthRecord)
				records.GET("/:id", r.handler.GetHealthRecord)
				records.PUT("/:id", r.handler.UpdateHealthRecord)
				records.DELETE("/:id", r.handler.DeleteHealthRecord)
			}

			user := protected.Group("/user")
			{
				user.GET("/profile", r.handler.GetProfile)
				user.PUT("/profile", r.handler.UpdateProfile)
			}

			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", r.handler.GetDashboardStats)
				dashboard.GET("/activities", r.handler.GetRecentActivities)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return router
}
