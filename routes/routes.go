package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, uh *handlers.UserHandler, ah *handlers.AdminHandler, sessions utils.SessionStore) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	registerUserRoutes(r, uh, sessions)
	registerAdminRoutes(r, ah)
}

// registerUserRoutes registers registration and session endpoints.
func registerUserRoutes(r *gin.Engine, uh *handlers.UserHandler, sessions utils.SessionStore) {
	api := r.Group("/api/users")
	{
		api.POST("/register", uh.RegisterUserHandler)
		api.POST("/login", uh.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(sessions))
		api.GET("/me", uh.GetProfileHandler)
		api.POST("/logout", uh.LogoutUserHandler)
	}
}

// registerAdminRoutes registers the reporting endpoints. These are served
// without authentication, matching the current wiring; attach
// middleware.JWTAuthMiddleware plus middleware.RequireAdmin to the group to
// gate them.
func registerAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	api := r.Group("/api/admin")
	{
		api.GET("/unique-doctors", ah.UniqueDoctorsHandler)
		api.GET("/bookings-by-doctor", ah.BookingsByDoctorHandler)
		api.GET("/total-earnings-all-doctors", ah.TotalEarningsAllDoctorsHandler)
		api.GET("/total-earnings-by-doctor", ah.TotalEarningsByDoctorHandler)
		api.GET("/top-earning-doctors", ah.TopEarningDoctorsHandler)
		api.GET("/service-categories-by-doctor", ah.ServiceCategoriesByDoctorHandler)
		api.GET("/earnings-by-service-category-by-doctor", ah.EarningsByServiceCategoryByDoctorHandler)
		api.GET("/bookings", ah.SearchBookingsHandler)
	}
}
