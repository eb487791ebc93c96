package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "github.com/Yarwood-cmd/texas-airport-fullstack/internal/config"
	h "github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/handlers"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/middleware"
)

func NewRouter(env intconfig.Env, handler h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.GET("/profile", middleware.RequireAuth(secret), handler.Profile)
		auth.PUT("/profile", middleware.RequireAuth(secret), handler.UpdateProfile)
		auth.POST("/upgrade", middleware.RequireAuth(secret), handler.Upgrade)

		flights := api.Group("/flights")
		flights.GET("", handler.ListFlights)
		flights.GET("/:id", handler.GetFlight)
		flights.GET("/:id/availability", handler.FlightAvailabilityByID)
		flights.GET("/number/:number", handler.GetFlightByNumber)
		flights.GET("/number/:number/availability", handler.FlightAvailability)
		admin := flights.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		admin.POST("", handler.CreateFlight)
		admin.PUT("/:id", handler.UpdateFlight)
		admin.DELETE("/:id", handler.DeleteFlight)

		bookings := api.Group("/bookings", middleware.RequireAuth(secret))
		bookings.POST("", handler.CreateBooking)
		bookings.GET("", handler.ListBookings)
		bookings.GET("/stats", handler.BookingStats)
		bookings.GET("/active", handler.ListActiveBookings)
		bookings.GET("/id/:id", handler.GetBookingByID)
		bookings.DELETE("/id/:id", handler.CancelBookingByID)
		bookings.GET("/:reference", handler.GetBooking)
		bookings.DELETE("/:reference", handler.CancelBooking)
		bookings.GET("/:reference/eticket", handler.BookingETicketPDF)
		bookings.GET("/:reference/invoice", handler.BookingInvoicePDF)
	}

	h.SetRouter(r)
	return r
}
